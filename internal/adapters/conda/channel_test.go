package conda_test

import (
	"testing"

	"github.com/benmoss/pixi-outdated/internal/adapters/conda"
	"github.com/stretchr/testify/assert"
)

func TestChannelFromSource(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		channel string
		ok      bool
	}{
		{
			name:    "conda-forge package",
			source:  "https://conda.anaconda.org/conda-forge/linux-64/python-3.12.0-hab00c5b_0_cpython.conda",
			channel: "https://conda.anaconda.org/conda-forge",
			ok:      true,
		},
		{
			name:    "noarch package",
			source:  "https://conda.anaconda.org/conda-forge/noarch/tzdata-2024a-h0c530f3_0.conda",
			channel: "https://conda.anaconda.org/conda-forge",
			ok:      true,
		},
		{
			name:    "tar.bz2 package",
			source:  "https://conda.anaconda.org/bioconda/linux-64/samtools-1.17-h00cdaf9_0.tar.bz2",
			channel: "https://conda.anaconda.org/bioconda",
			ok:      true,
		},
		{
			name:    "nested channel path",
			source:  "https://repo.anaconda.com/pkgs/main/osx-arm64/numpy-1.26.0-py312_0.conda",
			channel: "https://repo.anaconda.com/pkgs/main",
			ok:      true,
		},
		{
			name:    "subdir url without filename",
			source:  "https://conda.anaconda.org/conda-forge/linux-64",
			channel: "https://conda.anaconda.org/conda-forge",
			ok:      true,
		},
		{
			name:   "relative path",
			source: "conda-forge/linux-64/python-3.12.0.conda",
			ok:     false,
		},
		{
			name:   "bare host",
			source: "https://conda.anaconda.org",
			ok:     false,
		},
		{
			name:   "empty source",
			source: "",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, ok := conda.ChannelFromSource(tt.source)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.channel, channel)
		})
	}
}
