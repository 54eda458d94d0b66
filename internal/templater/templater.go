package templater

import (
	"regexp"
	"strconv"
	"strings"

	"novelarr/internal/domain"
	"novelarr/internal/utils"
)

// DefaultTemplate renders e.g. "Martial Peak Ch. 007 - Sweeper".
const DefaultTemplate = "{novel:<.>} Ch. {num:3}{title: - <.>}"

var templatePattern = regexp.MustCompile(`{((\w+?)(:.*?)?)}`)

type Templater struct {
	Novel   domain.Novel
	Chapter domain.Chapter
}

func New(novel domain.Novel, chapter domain.Chapter) *Templater {
	return &Templater{
		Novel:   novel,
		Chapter: chapter,
	}
}

func (t *Templater) handleNum(options string) string {
	if options == "" {
		return strconv.Itoa(t.Chapter.Number)
	}

	length, _ := strconv.ParseInt(strings.TrimPrefix(options, ":"), 10, 32)
	return utils.PadInt(t.Chapter.Number, int(length))
}

func (t *Templater) handleNovelTitle(options string) string {
	return fill(options, t.Novel.Title)
}

func (t *Templater) handleChapterTitle(options string) string {
	return fill(options, t.Chapter.Title)
}

func (t *Templater) handleProvider(options string) string {
	return fill(options, string(t.Novel.Provider))
}

// fill substitutes value for <.> in options. Empty values render nothing so
// optional parts like " - <.>" disappear.
func fill(options, value string) string {
	if value == "" {
		return ""
	}
	if options == "" {
		return value
	}

	return strings.ReplaceAll(strings.TrimPrefix(options, ":"), "<.>", value)
}

func (t *Templater) ExecTemplate(template string) string {
	newString := template
	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		replace := match[0]

		varName := match[2]
		switch varName {
		case "num":
			replace = t.handleNum(match[3])
		case "novel":
			replace = t.handleNovelTitle(match[3])
		case "title":
			replace = t.handleChapterTitle(match[3])
		case "provider":
			replace = t.handleProvider(match[3])
		}

		newString = strings.Replace(newString, match[0], replace, 1)
	}

	return newString
}
