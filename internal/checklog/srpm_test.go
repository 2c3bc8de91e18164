package checklog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogName(t *testing.T) {
	cases := []struct {
		path    string
		name    string
		version string
	}{
		{"zlib-1.2.11-5.src.rpm.test.log", "zlib", "1.2.11-5"},
		{"/build/logs/zlib-1.2.11-5.src.rpm.test.log", "zlib", "1.2.11-5"},
		{"python-requests-2.25.1-1.src.rpm.test.log", "python-requests", "2.25.1-1"},
		{"glibc-2.35-3.cm2.src.rpm.test.log", "glibc", "2.35-3.cm2"},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			pkg, err := ParseLogName(c.path)
			require.NoError(t, err)
			assert.Equal(t, c.name, pkg.Name)
			assert.Equal(t, c.version, pkg.Version)
		})
	}
}

func TestParseLogNameMismatch(t *testing.T) {
	for _, path := range []string{
		"zlib.src.rpm.test.log",
		"zlib-1.2.11-5.src.rpm.log",
		"notes.txt",
		"",
	} {
		_, err := ParseLogName(path)
		assert.Error(t, err, "path %q", path)
	}
}
