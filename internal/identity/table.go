package identity

import (
	"sort"
	"strings"
)

// Table maps a vault id to the identity path fragment that owns it
type Table map[string]string

// Parse builds a Table from an ansible vault_identity_list value. Tokens are
// comma separated and expected as identity@vaultid. Tokens that do not split
// into exactly two parts around @ are skipped and returned as dropped. On a
// repeated vault id the last token wins.
func Parse(list string) (Table, []string) {
	table := Table{}
	dropped := []string{}

	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		parts := strings.Split(token, "@")
		if len(parts) != 2 {
			dropped = append(dropped, token)
			continue
		}

		table[parts[1]] = parts[0]
	}

	return table, dropped
}

func (t Table) Lookup(vaultID string) (string, bool) {
	fragment, ok := t[vaultID]
	return fragment, ok
}

func (t Table) Len() int {
	return len(t)
}

func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
