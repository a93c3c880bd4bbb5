package vaultfile

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	t.Run("single line entry", func(t *testing.T) {
		input := "first: nothing here\nmysecret: $ANSIBLE_VAULT;1.1;AES256;id1  \nother\n"

		got, err := Find(strings.NewReader(input), "mysecret")
		require.NoError(t, err)
		require.Equal(t, &Entry{
			Name:    "mysecret",
			Line:    2,
			Text:    "mysecret: $ANSIBLE_VAULT;1.1;AES256;id1  ",
			Payload: "mysecret: $ANSIBLE_VAULT;1.1;AES256;id1  ",
			VaultID: "id1",
		}, got)
	})

	t.Run("first match wins", func(t *testing.T) {
		input := "mysecret_old: x;old\nmysecret: x;new\n"

		got, err := Find(strings.NewReader(input), "mysecret")
		require.NoError(t, err)
		require.Equal(t, 1, got.Line)
		require.Equal(t, "old", got.VaultID)
	})

	t.Run("substring match", func(t *testing.T) {
		got, err := Find(strings.NewReader("prefix_mysecret_suffix;id9\n"), "mysecret")
		require.NoError(t, err)
		require.Equal(t, "id9", got.VaultID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Find(strings.NewReader("a;1\nb;2\n"), "mysecret")
		require.ErrorIs(t, err, ErrVaultNotFound)
	})

	t.Run("no separator", func(t *testing.T) {
		_, err := Find(strings.NewReader("mysecret: plain\n"), "mysecret")
		require.ErrorIs(t, err, ErrMalformedVaultLine)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := Find(strings.NewReader("mysecret: a;b;\n"), "mysecret")
		require.ErrorIs(t, err, ErrMalformedVaultLine)
	})

	t.Run("inline block", func(t *testing.T) {
		input := strings.Join([]string{
			"vars:",
			"  mysecret: !vault |",
			"    $ANSIBLE_VAULT;1.2;AES256;id1",
			"    6231",
			"",
			"    6134",
			"  other: value",
		}, "\n")

		got, err := Find(strings.NewReader(input), "mysecret")
		require.NoError(t, err)
		require.Equal(t, &Entry{
			Name:    "mysecret",
			Line:    2,
			Text:    "  mysecret: !vault |",
			Payload: "$ANSIBLE_VAULT;1.2;AES256;id1\n6231\n\n6134\n",
			VaultID: "id1",
		}, got)
	})

	t.Run("inline block without header", func(t *testing.T) {
		_, err := Find(strings.NewReader("mysecret: !vault |\n  6231\n"), "mysecret")
		require.ErrorIs(t, err, ErrMalformedVaultLine)
	})

	t.Run("inline block with no body", func(t *testing.T) {
		_, err := Find(strings.NewReader("mysecret: !vault |\nother: x\n"), "mysecret")
		require.ErrorIs(t, err, ErrMalformedVaultLine)
	})
}

func TestLocate(t *testing.T) {
	t.Run("testdata", func(t *testing.T) {
		got, err := Locate(afero.NewOsFs(), "testdata/secrets.yml", "db_password")
		require.NoError(t, err)
		require.Equal(t, 3, got.Line)
		require.Equal(t, "prod", got.VaultID)
		require.True(t, strings.HasPrefix(got.Payload, "$ANSIBLE_VAULT;1.2;AES256;prod\n6231"))
		require.True(t, strings.HasSuffix(got.Payload, "0a663537646436643839616531643561\n"))

		got, err = Locate(afero.NewOsFs(), "testdata/secrets.yml", "api_token")
		require.NoError(t, err)
		require.Equal(t, "staging", got.VaultID)

		got, err = Locate(afero.NewOsFs(), "testdata/secrets.yml", "db_password_replica")
		require.NoError(t, err)
		require.Equal(t, "dev", got.VaultID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Locate(afero.NewMemMapFs(), "/nope.yml", "x")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrVaultNotFound)
	})

	t.Run("not found mentions path", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/vars.yml", []byte("a;1\n"), 0644))

		_, err := Locate(fs, "/vars.yml", "mysecret")
		require.ErrorIs(t, err, ErrVaultNotFound)
		require.Contains(t, err.Error(), "/vars.yml")
	})
}
