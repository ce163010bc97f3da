// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	ResultLine    = "Domain: %s | Days until Certification expires: %s"
	ContextInit   = "Error creating SSL context"
	SessionInit   = "Error getting SSL object"
	Connect       = "Error connecting to %s"
	NoCertificate = "No certificate found for %s"
	Expiry        = "Could not calculate certificate expiration"
	Load          = "Could not read certificate %s"
)

var supported = []language.Tag{language.English, language.Spanish}

var keys = []string{ResultLine, ContextInit, SessionInit, Connect, NoCertificate, Expiry, Load}

var translations = map[language.Tag]map[string]string{
	language.Spanish: {
		ResultLine:    "Dominio: %s | Días hasta que expire el certificado: %s",
		ContextInit:   "Error al crear el contexto SSL",
		SessionInit:   "Error al obtener el objeto SSL",
		Connect:       "Error al conectar con %s",
		NoCertificate: "No se encontró ningún certificado para %s",
		Expiry:        "No se pudo calcular la expiración del certificado",
		Load:          "No se pudo leer el certificado %s",
	},
}

// Detect returns the supported language selected by LC_ALL, LC_MESSAGES or LANG,
// consulted in that order through getenv.
func Detect(getenv func(string) string) language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return Match(v)
		}
	}
	return language.English
}

// Match maps a POSIX locale name such as "es_ES.UTF-8" to a supported language.
func Match(posix string) language.Tag {
	name := posix
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.English
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.English
	}

	_, idx, conf := language.NewMatcher(supported).Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// NewPrinter returns a printer for tag backed by the bundled catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(newCatalog()))
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range keys {
		_ = b.SetString(language.English, key, key)
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// SetString only fails for malformed messages, which a test guards against.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}
