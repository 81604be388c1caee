package report

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ugparu/dtminfo/format/dtm"
	"github.com/ugparu/dtminfo/utils"
)

func testHeader() dtm.Header {
	return dtm.Header{
		GameID:             "GMSE01",
		IsWiiGame:          true,
		FrameCount:         3600,
		NumRerecords:       12,
		Author:             "tas",
		MD5:                "AFF10",
		RecordingStartTime: 1700000000,
		CPUCore:            dtm.CPUCoreJITIL,
		Bongos:             2,
		GitRevision:        "DEADBEEF",
		DSPIROMHash:        0xD5F3E6A4,
		DSPCoefHash:        0x0F,
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"text": Text, "JSON": JSON, " yaml ": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	require.ErrorAs(t, err, &utils.UnsupportedFormatError{})
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	require.NoError(t, WriteText(buf, testHeader()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 37)
	require.Equal(t, "Game ID                        : GMSE01", lines[0])
	require.Contains(t, lines, "Is Wii game                    : true")
	require.Contains(t, lines, "Recording start time           : 1700000000 seconds")
	require.Contains(t, lines, "CPU Core                       : JITIL")
	require.Contains(t, lines, "Bongos                         : 2")
	require.Contains(t, lines, "Revision                       : DEADBEEF")
	require.Contains(t, lines, "DSP IROM hash                  : D5F3E6A4")
	require.Equal(t, "DSP coef hash                  : F", lines[len(lines)-1])
}

func TestWrite_TextMultipleFiles(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	entries := []Entry{{Path: "a.dtm", Header: testHeader()}, {Path: "b.dtm", Header: testHeader()}}
	require.NoError(t, Write(buf, Text, entries))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "==> a.dtm <==\n"))
	require.Contains(t, out, "\n\n==> b.dtm <==\n")
}

func TestWrite_TextSingleFileHasNoBanner(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	require.NoError(t, Write(buf, Text, []Entry{{Path: "a.dtm", Header: testHeader()}}))
	require.NotContains(t, buf.String(), "==>")
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	require.NoError(t, Write(buf, JSON, []Entry{{Path: "a.dtm", Header: testHeader()}}))

	var decoded []map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "a.dtm", decoded[0]["path"])

	header, ok := decoded[0]["header"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "GMSE01", header["game_id"])
	require.Equal(t, "JITIL", header["cpu_core"])
	require.Equal(t, "AFF10", header["md5"])
	require.NotContains(t, header, "MD5Sum")
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	require.NoError(t, Write(buf, YAML, []Entry{{Path: "a.dtm", Header: testHeader()}}))

	var decoded []struct {
		Path   string         `yaml:"path"`
		Header map[string]any `yaml:"header"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "a.dtm", decoded[0].Path)
	require.Equal(t, "JITIL", decoded[0].Header["cpu_core"])
	require.Equal(t, 3600, decoded[0].Header["frame_count"])
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(new(bytes.Buffer), Format("xml"), nil)
	require.ErrorAs(t, err, &utils.UnsupportedFormatError{})
}
