// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils_test

import (
	"strings"
	"testing"

	"github.com/scc-digitalhub/mycloud-cli-sdk/sdk/utils"
)

func TestFormatOutput(t *testing.T) {
	body := []byte(`{"used":10,"limit":100}`)

	out, err := utils.FormatOutput(body, "yml")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "limit: 100\nused: 10\n" {
		t.Fatalf("unexpected yaml %q", out)
	}

	out, err = utils.FormatOutput(body, "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "\n  \"used\": 10") {
		t.Fatalf("json not indented: %q", out)
	}

	out, _ = utils.FormatOutput(body, "")
	if string(out) != string(body) {
		t.Fatalf("short format must not touch the body: %q", out)
	}

	for _, format := range []string{"yaml", "json"} {
		if _, err := utils.FormatOutput([]byte("not json"), format); err == nil {
			t.Fatalf("expected an error converting a plain body to %s", format)
		}
	}
	if out, err := utils.FormatOutput([]byte("not json"), "text"); err != nil || string(out) != "not json" {
		t.Fatalf("text format must pass any body through: %q, %v", out, err)
	}
}

func TestHumanBytes(t *testing.T) {
	cases := map[int64]string{
		12:          "12 B",
		2048:        "2.00 KB",
		5 << 20:     "5.00 MB",
		3 << 30:     "3.00 GB",
		1 << 40:     "1.00 TB",
		1536 * 1024: "1.50 MB",
	}
	for n, want := range cases {
		if got := utils.HumanBytes(n); got != want {
			t.Fatalf("HumanBytes(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestStagingNameIsUnique(t *testing.T) {
	a, b := utils.StagingName("x.csv"), utils.StagingName("x.csv")
	if a == b || !strings.HasSuffix(a, "-x.csv.part") {
		t.Fatalf("unexpected staging names %q %q", a, b)
	}
}
