// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"encoding/json"
	"io"
)

type fieldFilterWriter struct {
	w      io.Writer
	fields []string
}

// NewFieldFilterWriter returns a writer that removes the given top-level keys
// from each JSON log line before passing it on. Lines that are not JSON
// objects are written unchanged.
func NewFieldFilterWriter(w io.Writer, fields []string) io.Writer {
	return &fieldFilterWriter{w: w, fields: fields}
}

func (f *fieldFilterWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	body := bytes.TrimRight(p, "\n")
	newline := len(body) < len(p)

	var entry map[string]json.RawMessage
	if err := json.Unmarshal(body, &entry); err != nil {
		if _, werr := f.w.Write(p); werr != nil {
			return 0, werr
		}
		return len(p), nil
	}

	for _, field := range f.fields {
		delete(entry, field)
	}

	out, err := json.Marshal(entry)
	if err != nil {
		return 0, err
	}
	if newline {
		out = append(out, '\n')
	}

	// short writes are ignored; the caller sees the original line consumed
	if _, err := f.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
