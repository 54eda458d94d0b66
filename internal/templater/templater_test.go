package templater

import (
	"testing"

	"novelarr/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExecTemplate(t *testing.T) {
	novel := domain.Novel{Title: "Martial Peak", Provider: domain.FreeWebNovel}

	tests := []struct {
		name     string
		template string
		chapter  domain.Chapter
		want     string
	}{
		{
			name:     "default with title",
			template: DefaultTemplate,
			chapter:  domain.Chapter{Number: 7, Title: "Sweeper"},
			want:     "Martial Peak Ch. 007 - Sweeper",
		},
		{
			name:     "default without title",
			template: DefaultTemplate,
			chapter:  domain.Chapter{Number: 1234},
			want:     "Martial Peak Ch. 1234",
		},
		{
			name:     "plain placeholders",
			template: "[{provider}] {novel} {num}: {title}",
			chapter:  domain.Chapter{Number: 3, Title: "Trial"},
			want:     "[freeWebNovel] Martial Peak 3: Trial",
		},
		{
			name:     "unknown placeholder is kept",
			template: "{volume} {num:2}",
			chapter:  domain.Chapter{Number: 3},
			want:     "{volume} 03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(novel, tt.chapter).ExecTemplate(tt.template))
		})
	}
}
