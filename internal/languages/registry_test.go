package languages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRoundTrip(t *testing.T) {
	for _, lang := range List() {
		require.NotEmpty(t, lang.Name(), "language %d has no name", int(lang))

		got, err := FromName(lang.Name())
		require.NoError(t, err)
		assert.Equal(t, lang, got)

		text, err := lang.MarshalText()
		require.NoError(t, err)
		var decoded LanguageType
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, lang, decoded)
	}
}

func TestFromNameUnknown(t *testing.T) {
	for _, name := range []string{"NotALanguage", "", "rust"} {
		_, err := FromName(name)
		require.ErrorIs(t, err, ErrUnknownLanguage)

		var unknown *UnknownLanguageError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, name, unknown.Name)
	}
}

func TestCatalogKeysAreUnique(t *testing.T) {
	names := make(map[string]LanguageType)
	extensions := make(map[string]LanguageType)
	fileNames := make(map[string]LanguageType)

	for _, lang := range List() {
		if prev, ok := names[lang.Name()]; ok {
			t.Errorf("name %q shared by %d and %d", lang.Name(), prev, lang)
		}
		names[lang.Name()] = lang

		for _, ext := range lang.Extensions() {
			assert.Equal(t, strings.ToLower(ext), ext, "extensions are stored lower case")
			if prev, ok := extensions[ext]; ok {
				t.Errorf("extension %q shared by %s and %s", ext, prev, lang)
			}
			extensions[ext] = lang
		}
		for _, name := range lang.FileNames() {
			if prev, ok := fileNames[name]; ok {
				t.Errorf("file name %q shared by %s and %s", name, prev, lang)
			}
			fileNames[name] = lang
		}
	}
	assert.Len(t, names, len(List()))
}

func TestInvalidLanguageType(t *testing.T) {
	invalid := LanguageType(-1)
	assert.False(t, invalid.Valid())
	assert.Empty(t, invalid.Name())
	assert.Empty(t, invalid.Extensions())
	_, err := invalid.MarshalText()
	assert.Error(t, err)
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want LanguageType
		ok   bool
	}{
		{path: "src/main.rs", want: Rust, ok: true},
		{path: "pkg/server.GO", want: Go, ok: true},
		{path: "build/CMakeLists.txt", want: CMake, ok: true},
		{path: "Dockerfile", want: Dockerfile, ok: true},
		{path: "deploy/Dockerfile.prod", want: Dockerfile, ok: true},
		{path: "GNUmakefile", want: Makefile, ok: true},
		{path: "notes.unknownext", ok: false},
		{path: "LICENSE", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFromShebang(t *testing.T) {
	tests := []struct {
		line string
		want LanguageType
		ok   bool
	}{
		{line: "#!/bin/bash", want: Bash, ok: true},
		{line: "#!/usr/bin/python", want: Python, ok: true},
		{line: "#!/usr/bin/env python3", want: Python, ok: true},
		{line: "#!/usr/bin/env python3.11", want: Python, ok: true},
		{line: "#!/usr/bin/env -S bash -e", want: Bash, ok: true},
		{line: "#!/usr/bin/env", ok: false},
		{line: "# not a shebang", ok: false},
		{line: "#!/opt/custom/interpreter", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := FromShebang(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLookupAndFenceInfo(t *testing.T) {
	lookups := map[string]LanguageType{
		"Rust":       Rust,
		"rust":       Rust,
		"golang":     Go,
		"py":         Python,
		" markdown ": Markdown,
	}
	for name, want := range lookups {
		got, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := Lookup("definitely-not-a-language")
	assert.False(t, ok)

	fences := map[string]LanguageType{
		"rust":            Rust,
		"{.python}":       Python,
		"js title=app.js": JavaScript,
		"rust,ignore":     Rust,
		"Go":              Go,
	}
	for info, want := range fences {
		got, ok := FromFenceInfo(info)
		require.True(t, ok, info)
		assert.Equal(t, want, got, info)
	}
	_, ok = FromFenceInfo("   ")
	assert.False(t, ok)
}

func TestEmbeddingCapabilities(t *testing.T) {
	assert.True(t, Html.EmbedsHTML())
	assert.True(t, Markdown.EmbedsFencedCode())
	assert.True(t, Markdown.IsLiterate())
	assert.True(t, Jupyter.IsNotebook())
	assert.False(t, Go.EmbedsHTML())
	assert.True(t, Rust.AllowsNested())
	assert.False(t, C.AllowsNested())
}
