// Package locale holds the user-facing strings of the quiz client.
package locale

import (
	"fmt"
	"sort"
)

// Key names a user-facing message.
type Key string

const (
	AppTitle         Key = "app_title"
	AppSubtitle      Key = "app_subtitle"
	LoadingQuizzes   Key = "loading_quizzes"
	NoQuizzes        Key = "no_quizzes"
	QuizCardHint     Key = "quiz_card_hint"
	LoadingQuiz      Key = "loading_quiz"
	BackToList       Key = "back_to_list"
	SubmitAnswers    Key = "submit_answers"
	ResultsTitle     Key = "results_title"
	ResultText       Key = "result_text"
	ResultHint       Key = "result_hint"
	AnsweredProgress Key = "answered_progress"
	ErrListLoad      Key = "err_list_load"
	ErrDetailLoad    Key = "err_detail_load"
	ErrNoAnswers     Key = "err_no_answers"

	HintNavigate Key = "hint_navigate"
	HintOpen     Key = "hint_open"
	HintReload   Key = "hint_reload"
	HintSelect   Key = "hint_select"
	HintPick     Key = "hint_pick"
	HintSubmit   Key = "hint_submit"
	HintBack     Key = "hint_back"
	HintQuit     Key = "hint_quit"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

var catalogs = map[string]map[Key]string{
	"en": {
		AppTitle:         "Quizzes",
		AppSubtitle:      "Take a short quiz and test yourself",
		LoadingQuizzes:   "Loading quizzes...",
		NoQuizzes:        "No quizzes available yet.",
		QuizCardHint:     "Press Enter to start",
		LoadingQuiz:      "Loading quiz...",
		BackToList:       "Back to list",
		SubmitAnswers:    "Submit answers",
		ResultsTitle:     "Results",
		ResultText:       "You answered %d of %d questions correctly.",
		ResultHint:       "Correct answers are green, wrong picks are red.",
		AnsweredProgress: "Answered %d/%d",
		ErrListLoad:      "Could not load the quiz list. Please try again later.",
		ErrDetailLoad:    "Could not load the quiz. Please try again later.",
		ErrNoAnswers:     "Please select at least one answer.",

		HintNavigate: "Navigate",
		HintOpen:     "Open",
		HintReload:   "Reload",
		HintSelect:   "Select",
		HintPick:     "Pick option",
		HintSubmit:   "Submit",
		HintBack:     "Back",
		HintQuit:     "Quit",
	},
	"ru": {
		AppTitle:         "Викторины",
		AppSubtitle:      "Пройдите короткий тест и проверьте себя",
		LoadingQuizzes:   "Загрузка списка викторин...",
		NoQuizzes:        "Пока нет доступных викторин.",
		QuizCardHint:     "Нажмите Enter, чтобы начать",
		LoadingQuiz:      "Загрузка викторины...",
		BackToList:       "Назад к списку",
		SubmitAnswers:    "Отправить ответы",
		ResultsTitle:     "Результаты",
		ResultText:       "Вы ответили правильно на %d из %d вопросов.",
		ResultHint:       "Зелёным отмечены правильные ответы, красным неверно выбранные.",
		AnsweredProgress: "Отвечено %d/%d",
		ErrListLoad:      "Не удалось загрузить список викторин. Попробуйте позже.",
		ErrDetailLoad:    "Не удалось загрузить викторину. Попробуйте позже.",
		ErrNoAnswers:     "Пожалуйста, выберите хотя бы один вариант ответа.",

		HintNavigate: "Навигация",
		HintOpen:     "Открыть",
		HintReload:   "Обновить",
		HintSelect:   "Выбрать",
		HintPick:     "Вариант",
		HintSubmit:   "Отправить",
		HintBack:     "Назад",
		HintQuit:     "Выход",
	},
}

// Catalog resolves message keys for one language.
type Catalog struct {
	lang     string
	messages map[Key]string
}

// New returns the catalog for lang, or an error if the language is unknown.
func New(lang string) (Catalog, error) {
	messages, ok := catalogs[lang]
	if !ok {
		return Catalog{}, fmt.Errorf("unsupported language %q (available: %v)", lang, Languages())
	}
	return Catalog{lang: lang, messages: messages}, nil
}

// Default returns the English catalog.
func Default() Catalog {
	c, _ := New(DefaultLanguage)
	return c
}

// Languages lists the supported language codes.
func Languages() []string {
	langs := make([]string, 0, len(catalogs))
	for l := range catalogs {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Lang returns the catalog's language code.
func (c Catalog) Lang() string {
	return c.lang
}

// T returns the message for k, formatted with args when given. Unknown keys
// render as the key itself.
func (c Catalog) T(k Key, args ...any) string {
	msg, ok := c.messages[k]
	if !ok {
		msg, ok = catalogs[DefaultLanguage][k]
	}
	if !ok {
		return string(k)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
