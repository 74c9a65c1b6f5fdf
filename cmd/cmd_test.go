package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/xviper"
	"github.com/spf13/pflag"
)

const (
	targetDocument = `{
  "SPDXID": "SPDXRef-DOCUMENT",
  "name": "app",
  "spdxVersion": "SPDX-2.3",
  "dataLicense": "CC0-1.0",
  "documentNamespace": "https://example.com/spdx/app",
  "documentDescribes": ["SPDXRef-app"],
  "packages": [
    {"SPDXID": "SPDXRef-app", "name": "app", "versionInfo": "1.0"},
    {"SPDXID": "SPDXRef-foo", "name": "libfoo", "versionInfo": "1.0"}
  ],
  "relationships": [
    {"spdxElementId": "SPDXRef-app", "relationshipType": "DEPENDS_ON", "relatedSpdxElement": "SPDXRef-foo"}
  ]
}
`
	libfooDocument = `{
  "SPDXID": "SPDXRef-DOCUMENT",
  "name": "libfoo",
  "spdxVersion": "SPDX-2.3",
  "dataLicense": "CC0-1.0",
  "documentNamespace": "https://example.com/spdx/libfoo",
  "packages": [
    {"SPDXID": "SPDXRef-libfoo", "name": "libfoo", "versionInfo": "1.0", "licenseConcluded": "MIT", "downloadLocation": "https://example.com/libfoo"},
    {"SPDXID": "SPDXRef-libbar", "name": "libbar", "versionInfo": "2.0", "filesAnalyzed": false}
  ],
  "relationships": [
    {"spdxElementId": "SPDXRef-libfoo", "relationshipType": "DEPENDS_ON", "relatedSpdxElement": "SPDXRef-libbar"}
  ]
}
`
)

type workspace struct {
	directory string
	input     string
	output    string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	directory := t.TempDir()
	it := &workspace{
		directory: directory,
		input:     filepath.Join(directory, "app.spdx.json"),
		output:    filepath.Join(directory, "out", "merged.spdx.json"),
	}
	it.write(t, "app.spdx.json", targetDocument)
	it.write(t, filepath.Join("vendor dir", "libfoo.spdx.json"), libfooDocument)
	return it
}

func (it *workspace) write(t *testing.T, name, content string) string {
	t.Helper()
	fullpath := filepath.Join(it.directory, name)
	if err := os.MkdirAll(filepath.Dir(fullpath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fullpath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fullpath
}

func (it *workspace) pattern() string {
	return filepath.Join(it.directory, "vendor dir", "*.spdx.json")
}

func resetFlags() {
	xviper.Reset()
	for _, command := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags(), treeCmd.Flags()} {
		command.VisitAll(func(flag *pflag.Flag) {
			if slice, ok := flag.Value.(pflag.SliceValue); ok {
				slice.Replace([]string{})
			} else {
				flag.Value.Set(flag.DefValue)
			}
			flag.Changed = false
		})
	}
}

// execute runs the command tree like main does and returns what went to
// stdout together with whatever the run panicked with.
func execute(t *testing.T, args ...string) (string, interface{}) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

// executeIn is execute with given directory as the tool home, where the
// default settings file lives.
func executeIn(t *testing.T, home string, args ...string) (string, interface{}) {
	t.Helper()
	t.Setenv(common.HOME_VARIABLE, home)
	resetFlags()
	t.Cleanup(resetFlags)

	sink := &bytes.Buffer{}
	original := common.Stdoutput
	common.Stdoutput = sink
	rootCmd.SetOut(sink)
	defer func() {
		common.Stdoutput = original
		rootCmd.SetOut(nil)
	}()

	var status interface{}
	func() {
		defer func() {
			status = recover()
		}()
		rootCmd.SetArgs(args)
		Execute()
	}()
	common.WaitLogs()
	return sink.String(), status
}
