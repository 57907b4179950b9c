package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairabooks/nairabooks/internal/model"
)

func TestWriteReadAccounts(t *testing.T) {
	accounts := DefaultChart()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(accounts))
	assert.Equal(t, accounts[0], got[0])
}

func TestReadAccounts_DefaultsNormalBalance(t *testing.T) {
	in := "code,name,class,sub_class,normal_balance,description\n" +
		"1999,Prepayments,asset,current,,\n"
	got, err := ReadAccounts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.SideDebit, got[0].NormalBalance)
}

func TestReadAccounts_UnknownClass(t *testing.T) {
	in := "code,name,class,sub_class,normal_balance,description\n" +
		"1999,Prepayments,thing,current,,\n"
	_, err := ReadAccounts(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown class")
}

func TestReadAccounts_Empty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
