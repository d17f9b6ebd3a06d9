package templates

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.yaml")

	yaml := `kind: example
description: Example template
body: |
  ;; {name}
  (define-constant label "{name}")
`

	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	tmpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}

	if tmpl.Kind != "example" {
		t.Fatalf("expected kind example, got %q", tmpl.Kind)
	}
	if tmpl.Source != path {
		t.Fatalf("expected source %q, got %q", path, tmpl.Source)
	}
	if got := tmpl.Placeholders(); len(got) != 1 || got[0] != "name" {
		t.Fatalf("unexpected placeholders: %v", got)
	}
}

func TestLoadTemplateRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()

	noKind := filepath.Join(dir, "nokind.yaml")
	require.NoError(t, os.WriteFile(noKind, []byte("body: hi\n"), 0644))
	_, err := LoadTemplate(noKind)
	require.ErrorIs(t, err, ErrTemplateKindRequired)

	noBody := filepath.Join(dir, "nobody.yaml")
	require.NoError(t, os.WriteFile(noBody, []byte("kind: empty\n"), 0644))
	_, err = LoadTemplate(noBody)
	require.ErrorIs(t, err, ErrTemplateBodyRequired)
}

func TestLoadTemplatesFromDirMissing(t *testing.T) {
	templates, err := LoadTemplatesFromDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestLoadTemplatesFromDirSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("kind: b\nbody: \"{x}\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("kind: a\nbody: \"{y}\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	templates, err := LoadTemplatesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "a", templates[0].Kind)
	assert.Equal(t, "b", templates[1].Kind)
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"none", "(ok true)", []string{}},
		{"ordered distinct", "{name} {symbol} {name} {slug}", []string{"name", "symbol", "slug"}},
		{"tuple literal ignored", "{ title: (string-ascii 50) } {name}", []string{"name"}},
		{"invalid identifiers ignored", "{1abc} {with space} {ok_1}", []string{"ok_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Placeholders(tt.body))
		})
	}
}

func TestRender(t *testing.T) {
	tmpl := &Template{
		Kind: "greet",
		Body: `(ok "{name}") ;; {name}/{symbol}`,
	}

	rendered, err := Render(tmpl, map[string]string{"name": "Alex", "symbol": "ALEX", "extra": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, `(ok "Alex") ;; Alex/ALEX`, rendered)
}

func TestRenderValuesAreVerbatim(t *testing.T) {
	tmpl := &Template{Kind: "verbatim", Body: "{a}-{b}"}

	rendered, err := Render(tmpl, map[string]string{"a": "{b}", "b": "$1 {{.x}}"})
	require.NoError(t, err)
	assert.Equal(t, "{b}-$1 {{.x}}", rendered)
}

func TestRenderMissingPlaceholder(t *testing.T) {
	tmpl := &Template{Kind: "sip010", Body: "{name} {symbol}"}

	_, err := Render(tmpl, map[string]string{"name": "Test Token"})
	require.Error(t, err)

	var missing *MissingPlaceholderError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "sip010", missing.Kind)
	assert.Equal(t, "symbol", missing.Key)
}

func TestRenderNilTemplate(t *testing.T) {
	_, err := Render(nil, nil)
	require.Error(t, err)
}

func TestRenderBuiltinFungibleToken(t *testing.T) {
	builtins, err := LoadBuiltinTemplates()
	require.NoError(t, err)
	set := NewSet(builtins...)

	tmpl, ok := set.Lookup("sip010")
	require.True(t, ok)

	rendered, err := Render(tmpl, map[string]string{"name": "Test Token", "symbol": "TT", "slug": "test"})
	require.NoError(t, err)

	assert.Contains(t, rendered, `(ok "Test Token")`)
	assert.Contains(t, rendered, `(ok "TT")`)
	assert.Contains(t, rendered, "(define-fungible-token test)")
	assert.Contains(t, rendered, "(ft-transfer? test amount sender recipient)")
	assert.Empty(t, Unresolved(rendered))
}

func TestLoadBuiltinTemplates(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}

	kinds := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		if tmpl.Source != "builtin" {
			t.Fatalf("expected builtin source, got %q", tmpl.Source)
		}
		if strings.TrimSpace(tmpl.Body) == "" {
			t.Fatalf("builtin template %q has empty body", tmpl.Kind)
		}
		kinds = append(kinds, tmpl.Kind)
	}

	assert.Equal(t, []string{
		"dao", "mock", "protocol",
		"sandbox-sip009", "sandbox-sip010", "sandbox-vault",
		"sip009", "sip010", "vault",
	}, kinds)
}

func TestBuiltinPlaceholders(t *testing.T) {
	set, err := LoadSetFromSearchPaths("", "")
	require.NoError(t, err)

	want := map[string][]string{
		"sip010":   {"name", "symbol", "slug"},
		"sip009":   {"name", "slug"},
		"vault":    {"name"},
		"dao":      {"name"},
		"protocol": {"name"},
		"mock":     {"title"},

		"sandbox-sip010": {"name", "symbol", "slug"},
		"sandbox-sip009": {"name", "slug"},
		"sandbox-vault":  {"name"},
	}
	for kind, keys := range want {
		tmpl, ok := set.Lookup(kind)
		require.True(t, ok, "missing builtin %s", kind)
		assert.Equal(t, keys, tmpl.Placeholders(), kind)
	}
}

func TestBuiltinMockKeepsTrailingBlankLine(t *testing.T) {
	set, err := LoadSetFromSearchPaths("", "")
	require.NoError(t, err)
	mock, ok := set.Lookup("mock")
	require.True(t, ok)

	rendered, err := Render(mock, map[string]string{"title": "CLARITY BITCOIN LIB"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rendered, ";; ========"))
	assert.Contains(t, rendered, ";; Title: CLARITY BITCOIN LIB (Mock)\n")
	assert.True(t, strings.HasSuffix(rendered, "(ok \"mock-state\")\n)\n\n"))
}

func TestBuiltinSandboxTemplates(t *testing.T) {
	set, err := LoadSetFromSearchPaths("", "")
	require.NoError(t, err)

	vault, _ := set.Lookup("sandbox-vault")
	rendered, err := Render(vault, map[string]string{"name": "Alex Vault"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rendered, ";; Alex Vault - Vault Contract\n;; Mock implementation\n\n"))
	assert.Contains(t, rendered, "(define-public (withdraw (amount uint))\n")
	assert.Contains(t, rendered, "(try! (as-contract (stx-transfer? amount tx-sender tx-sender)))")
	assert.True(t, strings.HasSuffix(rendered, "        (ok true)\n    )\n)\n"))

	token, _ := set.Lookup("sandbox-sip010")
	rendered, err = Render(token, map[string]string{"name": "Stacked STX", "symbol": "stSTX", "slug": "ststx"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rendered, ";; Stacked STX (stSTX) - SIP-010 Token\n;; Mock implementation for Sandbox\n\n"))
	assert.Contains(t, rendered, "\n\n(define-fungible-token ststx)\n\n")
	assert.Contains(t, rendered, "(ft-get-balance ststx who)")

	nft, _ := set.Lookup("sandbox-sip009")
	rendered, err = Render(nft, map[string]string{"name": "Boom NFT", "slug": "boom-nft"})
	require.NoError(t, err)
	assert.Contains(t, rendered, "(define-non-fungible-token boom-nft uint)\n\n")
	assert.Contains(t, rendered, "(nft-mint? boom-nft next-id recipient)")
}

func TestLoadSetFromSearchPathsOverride(t *testing.T) {
	project := t.TempDir()
	dir := filepath.Join(project, ".clarigen", "templates")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vault.yaml"), []byte("kind: vault\nbody: \";; {name} custom\"\n"), 0644))

	explicit := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(explicit, "vault.yaml"), []byte("kind: vault\nbody: \";; {name} explicit\"\n"), 0644))

	set, err := LoadSetFromSearchPaths(project, "")
	require.NoError(t, err)
	vault, _ := set.Lookup("vault")
	assert.Equal(t, filepath.Join(dir, "vault.yaml"), vault.Source)
	sip010, _ := set.Lookup("sip010")
	assert.Equal(t, "builtin", sip010.Source)

	set, err = LoadSetFromSearchPaths(project, explicit)
	require.NoError(t, err)
	vault, _ = set.Lookup("vault")
	assert.Equal(t, filepath.Join(explicit, "vault.yaml"), vault.Source)
}

func TestSetSuggest(t *testing.T) {
	set := NewSet(
		&Template{Kind: "sip009", Body: "x"},
		&Template{Kind: "sip010", Body: "x"},
		&Template{Kind: "vault", Body: "x"},
	)

	assert.Equal(t, []string{"sip009", "sip010", "vault"}, set.Kinds())
	assert.Equal(t, []string{"sip010"}, set.Suggest("sip01"))
	assert.Empty(t, set.Suggest("zzz"))
	assert.Nil(t, set.Suggest(""))
}
