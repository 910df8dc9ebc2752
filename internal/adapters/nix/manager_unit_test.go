//nolint:testpackage // Testing internal parsing logic
package nix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileList_ArrayLayout(t *testing.T) {
	output := []byte(`{
		"version": 2,
		"elements": [
			{"attrPath": "legacyPackages.x86_64-linux.jq", "storePaths": ["/nix/store/aaa-jq-1.7.1-bin", "/nix/store/aaa-jq-1.7.1-man"]},
			{"attrPath": "legacyPackages.x86_64-linux.nodejs_20", "storePaths": ["/nix/store/bbb-nodejs-20.11.0"]}
		]
	}`)

	path, err := parseProfileList(output, "nodejs_20")
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/bbb-nodejs-20.11.0", path)
}

func TestParseProfileList_ObjectLayout(t *testing.T) {
	output := []byte(`{
		"version": 3,
		"elements": {
			"nodejs_20": {"attrPath": "legacyPackages.x86_64-linux.nodejs_20", "storePaths": ["/nix/store/bbb-nodejs-20.11.0"]},
			"jq": {"attrPath": "legacyPackages.x86_64-linux.jq", "storePaths": ["/nix/store/aaa-jq-1.7.1-bin"]}
		}
	}`)

	path, err := parseProfileList(output, "jq")
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/aaa-jq-1.7.1-bin", path)
}

func TestParseProfileList_MatchOnStorePath(t *testing.T) {
	output := []byte(`{"elements": [{"attrPath": "", "storePaths": ["/nix/store/ccc-ripgrep-14.1.0"]}]}`)

	path, err := parseProfileList(output, "ripgrep")
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/ccc-ripgrep-14.1.0", path)
}

func TestParseProfileList_NoMatch(t *testing.T) {
	tests := map[string]string{
		"other packages": `{"elements": [{"attrPath": "x.jq", "storePaths": ["/nix/store/aaa-jq"]}]}`,
		"no elements":    `{"version": 2}`,
		"null elements":  `{"elements": null}`,
		"empty array":    `{"elements": []}`,
	}

	for name, output := range tests {
		t.Run(name, func(t *testing.T) {
			path, err := parseProfileList([]byte(output), "nodejs_20")
			require.NoError(t, err)
			assert.Empty(t, path)
		})
	}
}

func TestParseProfileList_Invalid(t *testing.T) {
	_, err := parseProfileList([]byte(`invalid json`), "jq")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse nix profile list JSON output")

	_, err = parseProfileList([]byte(`{"elements": "jq"}`), "jq")
	assert.Error(t, err)
}
