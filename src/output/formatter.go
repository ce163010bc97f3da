// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package output

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/H0llyW00dzZ/sslcheck/src/internal/check"
	"github.com/H0llyW00dzZ/sslcheck/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/sslcheck/src/internal/locale"
)

// Formatter writes results in a single display mode.
type Formatter struct {
	mode    Mode
	printer *message.Printer
	stdout  io.Writer
	stderr  io.Writer
}

// New returns a Formatter for mode. A nil printer prints English.
func New(mode Mode, printer *message.Printer, stdout, stderr io.Writer) *Formatter {
	if printer == nil {
		printer = locale.NewPrinter(language.English)
	}
	return &Formatter{mode: mode, printer: printer, stdout: stdout, stderr: stderr}
}

// Mode returns the display mode.
func (f *Formatter) Mode() Mode { return f.mode }

// Write renders r. The returned error only reports a failed write; a failed
// check is rendered, not returned.
func (f *Formatter) Write(r check.Result) error {
	if f.mode == JSON {
		return f.writeJSON(r)
	}

	if !r.OK() {
		return f.writeDiagnostic(r)
	}

	switch f.mode {
	case Short:
		return gc.WriteLine(f.stdout, func(buf gc.Buffer) {
			buf.WriteString(strconv.Itoa(*r.Days))
		})
	case Table:
		return f.writeTable(r)
	default:
		return gc.WriteLine(f.stdout, func(buf gc.Buffer) {
			// The count is formatted up front so the printer never applies
			// locale digit grouping to it.
			buf.WriteString(f.printer.Sprintf(locale.ResultLine, r.Domain, strconv.Itoa(*r.Days)))
		})
	}
}

func (f *Formatter) writeJSON(r check.Result) error {
	domain, err := json.Marshal(r.Domain)
	if err != nil {
		return err
	}

	return gc.WriteLine(f.stdout, func(buf gc.Buffer) {
		buf.WriteString(`{"domain": `)
		buf.Write(domain)
		buf.WriteString(`, "days": `)
		if r.OK() {
			buf.WriteString(strconv.Itoa(*r.Days))
		} else {
			buf.WriteString("null")
		}
		buf.WriteByte('}')
	})
}

func (f *Formatter) writeDiagnostic(r check.Result) error {
	return gc.WriteLine(f.stderr, func(buf gc.Buffer) {
		buf.WriteString(f.Diagnostic(r))
	})
}

// Diagnostic returns the translated one-line message for a failed result.
func (f *Formatter) Diagnostic(r check.Result) string {
	switch r.Kind() {
	case check.KindContextInit:
		return f.printer.Sprintf(locale.ContextInit)
	case check.KindSessionInit:
		return f.printer.Sprintf(locale.SessionInit)
	case check.KindConnect:
		return f.printer.Sprintf(locale.Connect, r.Domain)
	case check.KindNoCertificate:
		return f.printer.Sprintf(locale.NoCertificate, r.Domain)
	case check.KindCertificateLoad:
		return f.printer.Sprintf(locale.Load, r.Domain)
	default:
		return f.printer.Sprintf(locale.Expiry)
	}
}

func (f *Formatter) writeTable(r check.Result) error {
	var sb strings.Builder
	table := tablewriter.NewTable(&sb,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	port := r.Port
	if port == "" {
		port = "-"
	}

	table.Header([]string{"Domain", "Port", "Days", "Expires"})
	if err := table.Bulk([][]string{{
		r.Domain,
		port,
		strconv.Itoa(*r.Days),
		r.NotAfter.UTC().Format("2006-01-02") + " (" + humanize.Time(r.NotAfter) + ")",
	}}); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := io.WriteString(f.stdout, sb.String())
	return err
}
