package main

import (
	"bytes"
	"testing"

	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/stretchr/testify/assert"
)

func TestPrintGroup(t *testing.T) {
	var buf bytes.Buffer

	printGroup(&buf, &protos.EntityGroupInfo{Id: "eg1", LowerBound: []byte("a"), UpperBound: []byte("m"), ServerId: "s1", ServerAddress: "x:1"})
	printGroup(&buf, &protos.EntityGroupInfo{Id: "eg2", LowerBound: []byte("m"), ServerId: "s2"})

	assert.Equal(t, "eg1\t[\"a\", m)\ts1\tx:1\neg2\t[\"m\", +inf)\ts2\t\n", buf.String())
}
