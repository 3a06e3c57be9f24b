package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"serve"}, {"keypair"}, {"fund"}, {"quote"}, {"donate"}, {"trust"},
		{"wallet", "init"}, {"wallet", "rekey"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestArgsValidation(t *testing.T) {
	cases := [][]string{
		{"fund"},
		{"fund", "GA", "GB"},
		{"donate"},
		{"trust"},
		{"keypair", "extra"},
	}
	for _, args := range cases {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		assert.Error(t, root.Execute(), args)
	}
}

func TestKeypairCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"keypair"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"publicKey": "G`)
	assert.Contains(t, out.String(), `"secretKey": "S`)
}
