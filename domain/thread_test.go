package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreadName_TruncatesLongPrompt(t *testing.T) {
	req := require.New(t)
	prompt := strings.Repeat("abcdefghij", 10)

	name := ThreadName(prompt)

	req.True(strings.HasPrefix(name, ThreadNamePrefix))
	req.Equal(ThreadNamePrefix+prompt[:40]+"…", name)
}

func TestThreadName_ReplacesNewlines(t *testing.T) {
	req := require.New(t)
	prompt := "line one\nline two\n" + strings.Repeat("x", 80)

	name := ThreadName(prompt)

	excerpt := strings.TrimSuffix(strings.TrimPrefix(name, ThreadNamePrefix), "…")
	req.Len([]rune(excerpt), ThreadExcerptLength)
	req.NotContains(name, "\n")
	req.True(strings.HasPrefix(excerpt, "line one line two "))
}

func TestThreadName_ShortPromptKeepsEllipsis(t *testing.T) {
	require.Equal(t, ThreadNamePrefix+"hi…", ThreadName("hi"))
}

func TestThreadName_CountsCharactersNotBytes(t *testing.T) {
	req := require.New(t)
	prompt := strings.Repeat("é", 50)

	name := ThreadName(prompt)

	req.Equal(ThreadNamePrefix+strings.Repeat("é", 40)+"…", name)
}

func TestIsRelayThread(t *testing.T) {
	req := require.New(t)
	req.True(IsRelayThread(ThreadName("anything")))
	req.True(IsRelayThread(ThreadEmblem))
	req.False(IsRelayThread("general-help"))
	req.False(IsRelayThread("AptiQ — not ours"))
	req.False(IsRelayThread(""))
}
