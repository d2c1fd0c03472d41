package smburl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Minimal(t *testing.T) {
	u, warn, err := Parse("smb://fooberry")
	require.NoError(t, err)
	require.Nil(t, warn)
	require.Equal(t, "fooberry", u.Hostname)

	out, err := u.Compose()
	require.NoError(t, err)
	require.Equal(t, "smb://fooberry", out)
}

func TestParse_Empty(t *testing.T) {
	u, warn, err := Parse("")
	require.NoError(t, err)
	require.Nil(t, warn)
	require.Equal(t, "", u.Hostname)
}

func TestParse_FullCredentialsAndPath(t *testing.T) {
	u, warn, err := Parse("smb://ad;un:pw@host/share/path/file.ext")
	require.NoError(t, err)
	require.Nil(t, warn)
	require.Equal(t, "ad", u.AuthDomain)
	require.Equal(t, "un", u.Username)
	require.Equal(t, "pw", u.Password)
	require.Equal(t, "host", u.Hostname)
	require.Equal(t, "/share/path/file.ext", u.Path)
}

func TestParse_PortAndContext(t *testing.T) {
	u, warn, err := Parse("smb://host:139/share?nbns=172.28.42.88&nodetype=H;scope=gorch")
	require.NoError(t, err)
	require.Nil(t, warn)
	require.Equal(t, 139, u.Port)
	require.Equal(t, []ContextPair{
		{Key: "nbns", Value: "172.28.42.88"},
		{Key: "nodetype", Value: "H"},
		{Key: "scope", Value: "gorch"},
	}, u.Context)
}

func TestParse_FragmentProducesWarningNotError(t *testing.T) {
	u, warn, err := Parse("smb://host#NoGood")
	require.NoError(t, err)
	require.NotNil(t, warn)
	require.Equal(t, "host", u.Hostname)
}

func TestParse_PathWithoutHostnameIsSyntaxError(t *testing.T) {
	_, _, err := Parse("smb:///share/path")
	require.Error(t, err)
}

func TestParse_MissingDoubleSlashIsSyntaxError(t *testing.T) {
	_, _, err := Parse("smb:host/share")
	require.Error(t, err)
}

func TestParse_InvalidSchemeIsSyntaxError(t *testing.T) {
	_, _, err := Parse("http://host")
	require.Error(t, err)
}

func TestParse_PortOutOfRange(t *testing.T) {
	_, _, err := Parse("smb://host:99999")
	require.Error(t, err)
}

func TestCompose_PathWithoutHostnameIsSyntaxError(t *testing.T) {
	u := &URL{Path: "/share"}
	_, err := u.Compose()
	require.Error(t, err)
}

func TestParseContext_Doctest(t *testing.T) {
	got := ParseContext("? a=1;&b=2; c =3; &")
	require.Equal(t, []ContextPair{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}, got)
}

func TestComposeContext_Doctest(t *testing.T) {
	got := ComposeContext([]ContextPair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "c", Value: "3"}})
	require.Equal(t, "a=1;b=2;c=3", got)
	require.Equal(t, "", ComposeContext(nil))
}

func TestParse_RoundTripThroughCompose(t *testing.T) {
	u, _, err := Parse("smb://ad;un:pw@host?nbns=172.28.42.88;nodetype=H;scope=gorch")
	require.NoError(t, err)
	out, err := u.Compose()
	require.NoError(t, err)

	reparsed, _, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, u.AuthDomain, reparsed.AuthDomain)
	require.Equal(t, u.Username, reparsed.Username)
	require.Equal(t, u.Context, reparsed.Context)
}
