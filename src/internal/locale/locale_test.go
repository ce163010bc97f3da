// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in       string
		expected language.Tag
	}{
		{in: "", expected: language.English},
		{in: "C", expected: language.English},
		{in: "POSIX", expected: language.English},
		{in: "C.UTF-8", expected: language.English},
		{in: "en_US.UTF-8", expected: language.English},
		{in: "es_ES.UTF-8", expected: language.Spanish},
		{in: "es_AR", expected: language.Spanish},
		{in: "es_ES@euro", expected: language.Spanish},
		{in: "de_DE.UTF-8", expected: language.English},
		{in: "!!", expected: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Match(tt.in)
			base, _ := got.Base()
			want, _ := tt.expected.Base()
			assert.Equal(t, want, base)
		})
	}
}

func TestDetect_Precedence(t *testing.T) {
	env := map[string]string{
		"LC_ALL":      "",
		"LC_MESSAGES": "es_MX.UTF-8",
		"LANG":        "en_US.UTF-8",
	}
	tag := Detect(func(k string) string { return env[k] })
	base, _ := tag.Base()
	assert.Equal(t, "es", base.String())

	env["LC_ALL"] = "C"
	assert.Equal(t, language.English, Detect(func(k string) string { return env[k] }))

	assert.Equal(t, language.English, Detect(func(string) string { return "" }))
}

func TestNewPrinter(t *testing.T) {
	t.Run("English Uses Keys", func(t *testing.T) {
		p := NewPrinter(language.English)
		assert.Equal(t, "Domain: example.com | Days until Certification expires: 1234",
			p.Sprintf(ResultLine, "example.com", "1234"))
		assert.Equal(t, "Error connecting to example.com", p.Sprintf(Connect, "example.com"))
	})

	t.Run("Spanish", func(t *testing.T) {
		p := NewPrinter(language.Spanish)
		assert.Equal(t, "Error al conectar con example.com", p.Sprintf(Connect, "example.com"))
		assert.Equal(t, "Error al crear el contexto SSL", p.Sprintf(ContextInit))
	})
}

func TestTranslations_AreValid(t *testing.T) {
	b := catalog.NewBuilder()
	for tag, msgs := range translations {
		assert.Len(t, msgs, len(keys), "%s catalog is incomplete", tag)
		for key, msg := range msgs {
			require.NoError(t, b.SetString(tag, key, msg), "bad translation for %q", key)
		}
	}
}
