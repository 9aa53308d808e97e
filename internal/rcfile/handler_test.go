package rcfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rcversion/internal/logger"
	"github.com/joshuapare/rcversion/internal/testutil"
	"github.com/joshuapare/rcversion/internal/textenc"
	"github.com/joshuapare/rcversion/internal/writer"
	"github.com/joshuapare/rcversion/pkg/types"
)

const sampleRC = "VS_VERSION_INFO VERSIONINFO\r\n" +
	" FILEVERSION 1,0,0,1\r\n" +
	" PRODUCTVERSION 1,0,0,1\r\n" +
	"BEGIN\r\n" +
	"    BLOCK \"StringFileInfo\"\r\n" +
	"    BEGIN\r\n" +
	"        BLOCK \"040904b0\"\r\n" +
	"        BEGIN\r\n" +
	"            VALUE \"FileVersion\", \"1.0.0.1\"\r\n" +
	"            VALUE \"ProductVersion\", \"1.0.0.1\"\r\n" +
	"        END\r\n" +
	"    END\r\n" +
	"END\r\n"

var fullRequest = types.Request{Major: 2, Minor: 1, Build: 4, Revision: 7}

func expected(s, version string) string {
	return strings.NewReplacer("1,0,0,1", version, "1.0.0.1", version).Replace(s)
}

func newTestHandler(t *testing.T, verbosity int) (*Handler, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewHandler(logger.New(&out, verbosity)), &out
}

func TestLoadFile(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	path := testutil.WriteScript(t, "a.rc", []byte("hello"))

	data, err := h.LoadFile(path, 16)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, 5+16, cap(data))
	assert.Equal(t, make([]byte, 16), data[5:cap(data)])

	data, err = h.LoadFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 5+2, cap(data), "padding has a floor")
}

func TestLoadFile_Empty(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	data, err := h.LoadFile(testutil.WriteScript(t, "empty.rc", nil), DefaultPadding)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadFile_Missing(t *testing.T) {
	h, out := newTestHandler(t, logger.LevelError)
	_, err := h.LoadFile(filepath.Join(t.TempDir(), "missing.rc"), DefaultPadding)
	require.Error(t, err)
	assert.Equal(t, types.FileNotFound, types.CodeOf(err))
	assert.Contains(t, out.String(), "failed to open file")
}

func TestUpdateBytes_Encodings(t *testing.T) {
	want := expected(sampleRC, "2, 1, 4, 7")

	tests := []struct {
		name     string
		input    []byte
		wantEnc  textenc.Encoding
		wantData []byte
	}{
		{
			name:     "ascii",
			input:    []byte(sampleRC),
			wantEnc:  textenc.Narrow,
			wantData: []byte(want),
		},
		{
			name:     "utf-8 with bom",
			input:    append(append([]byte{}, textenc.UTF8BOM...), sampleRC...),
			wantEnc:  textenc.NarrowUTF8BOM,
			wantData: append(append([]byte{}, textenc.UTF8BOM...), want...),
		},
		{
			name:     "utf-16le with bom",
			input:    testutil.UTF16LE(sampleRC, true),
			wantEnc:  textenc.WideUTF16LEBOM,
			wantData: testutil.UTF16LE(want, true),
		},
		{
			name:     "utf-16le without bom",
			input:    testutil.UTF16LE(sampleRC, false),
			wantEnc:  textenc.WideUTF16LE,
			wantData: testutil.UTF16LE(want, false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, logger.LevelSilent)
			input := bytes.Clone(tt.input)

			res, err := h.UpdateBytes(input, fullRequest)
			require.NoError(t, err)
			assert.Equal(t, 4, res.Count)
			assert.Equal(t, tt.wantEnc, res.Encoding)
			if diff := cmp.Diff(tt.wantData, res.Data); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.input, input, "input must not be modified")
		})
	}
}

func TestUpdateBytes_Windows1252(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	input := "// Espa\xf1a\r\n" + sampleRC + "// \xa9 2024\r\n"

	res, err := h.UpdateBytes([]byte(input), fullRequest)
	require.NoError(t, err)
	assert.Equal(t, expected(input, "2, 1, 4, 7"), string(res.Data), "non-UTF-8 bytes pass through")
}

func TestUpdateBytes_EmbeddedNUL(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	input := sampleRC + "\x00trailing FILEVERSION 1,0,0,1"

	res, err := h.UpdateBytes([]byte(input), fullRequest)
	require.NoError(t, err)
	assert.Equal(t, expected(sampleRC, "2, 1, 4, 7")+"\x00trailing FILEVERSION 1,0,0,1", string(res.Data))
}

func TestUpdateBytes_OddWideLength(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	input := append(testutil.UTF16LE(sampleRC, true), 0x41)

	res, err := h.UpdateBytes(input, fullRequest)
	require.NoError(t, err)
	assert.Equal(t, append(testutil.UTF16LE(expected(sampleRC, "2, 1, 4, 7"), true), 0x41), res.Data)
}

func TestUpdateBytes_Failure(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	res, err := h.UpdateBytes([]byte("no block here\r\n"), fullRequest)
	require.Error(t, err)
	assert.Equal(t, types.FileCorrupt, types.CodeOf(err))
	assert.Nil(t, res.Data)
}

func TestUpdateBytes_SmallPadding(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	h.Padding = 0

	_, err := h.UpdateBytes([]byte("1 VERSIONINFO\r\nFILEVERSION 1,0,0,1\r\n"), fullRequest)
	require.Error(t, err)
	assert.Equal(t, types.InsufficientBuffer, types.CodeOf(err))
}

func TestUpdateFile_InPlace(t *testing.T) {
	h, out := newTestHandler(t, logger.LevelNormal)
	path := testutil.WriteScript(t, "app.rc", testutil.UTF16LE(sampleRC, true))

	res, err := h.UpdateFile(path, "", fullRequest)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testutil.UTF16LE(expected(sampleRC, "2, 1, 4, 7"), true), got, "BOM is preserved")
	assert.Contains(t, out.String(), "4 changes made to")
	assert.Contains(t, out.String(), "writing file")
}

func TestUpdateFile_SeparateOutput(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	input := testutil.WriteScript(t, "in.rc", []byte(sampleRC))
	output := filepath.Join(t.TempDir(), "out.rc")

	_, err := h.UpdateFile(input, output, types.DefaultRequest())
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, expected(sampleRC, "1, 0, 1, 1"), string(got))

	orig, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, sampleRC, string(orig), "input is left alone")
}

func TestUpdateFile_NoChanges(t *testing.T) {
	h, out := newTestHandler(t, logger.LevelNormal)
	path := testutil.WriteScript(t, "plain.rc", []byte("IDI_ICON1 ICON \"app.ico\"\r\n"))
	output := filepath.Join(filepath.Dir(path), "out.rc")

	_, err := h.UpdateFile(path, output, fullRequest)
	require.Error(t, err)
	assert.Equal(t, types.FileCorrupt, types.CodeOf(err))
	assert.Contains(t, out.String(), "No changes made to")
	assert.Contains(t, out.String(), "not modified.")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "nothing is written")
}

func TestUpdateFile_Missing(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	_, err := h.UpdateFile(filepath.Join(t.TempDir(), "missing.rc"), "", fullRequest)
	require.Error(t, err)
	assert.Equal(t, types.FileNotFound, types.CodeOf(err))
}

func TestUpdateTo_MemWriter(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	path := testutil.WriteScript(t, "app.rc", []byte(sampleRC))
	var mw writer.MemWriter

	res, err := h.UpdateTo(path, "memory", &mw, fullRequest)
	require.NoError(t, err)
	assert.Equal(t, res.Data, mw.Buf)
	assert.Equal(t, 1, mw.Writes)
}

func TestUpdateTo_PartialFailureWritesNothing(t *testing.T) {
	h, _ := newTestHandler(t, logger.LevelSilent)
	path := testutil.WriteScript(t, "app.rc", []byte("1 VERSIONINFO\r\nFILEVERSION 1,0,0,1\r\nPRODUCTVERSION bad\r\n"))
	var mw writer.MemWriter

	_, err := h.UpdateTo(path, "memory", &mw, fullRequest)
	require.Error(t, err)
	assert.Zero(t, mw.Writes)
}

func TestHandler_Verbosity(t *testing.T) {
	h, _ := newTestHandler(t, 7)
	assert.Equal(t, 7, h.Verbosity())
	assert.Equal(t, logger.LevelSilent, NewHandler(nil).Verbosity())
}

func TestUpdateFile_Fixtures(t *testing.T) {
	t.Run("generated script stops at #ifdef", func(t *testing.T) {
		h, _ := newTestHandler(t, logger.LevelSilent)
		path := testutil.SetupScript(t, testutil.ScriptVSGenerated)

		res, err := h.UpdateFile(path, "", types.DefaultRequest())
		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)

		got := readString(t, path)
		assert.Contains(t, got, " FILEVERSION 3, 2, 42, 0\r\n")
		assert.Contains(t, got, " PRODUCTVERSION 3, 2, 42, 0\r\n")
		assert.Contains(t, got, `VALUE "FileVersion", "3.2.41.0"`)
	})

	t.Run("generated script with directives skipped", func(t *testing.T) {
		h, _ := newTestHandler(t, logger.LevelSilent)
		h.SkipDirectives = true
		path := testutil.SetupScript(t, testutil.ScriptVSGenerated)

		res, err := h.UpdateFile(path, "", types.DefaultRequest())
		require.NoError(t, err)
		assert.Equal(t, 4, res.Count)

		want := strings.NewReplacer("3,2,41,0", "3, 2, 42, 0", "3.2.41.0", "3, 2, 42, 0").
			Replace(string(testutil.ReadFixture(t, testutil.ScriptVSGenerated)))
		if diff := cmp.Diff(want, readString(t, path)); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unicode script", func(t *testing.T) {
		h, _ := newTestHandler(t, logger.LevelSilent)
		path := testutil.SetupScript(t, testutil.ScriptUnicode)

		res, err := h.UpdateFile(path, "", types.Request{Major: 12, Minor: 23, Build: 345, Revision: 45})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Count)
		assert.Equal(t, textenc.WideUTF16LEBOM, res.Encoding)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(raw, textenc.UTF16LEBOM), "BOM is preserved")

		got := textenc.WideString(textenc.DecodeUnits(raw[2:]))
		assert.Equal(t, 4, strings.Count(got, "12, 23, 345, 45"))
		assert.Contains(t, got, "Zażółć Gęślą Jaźń")
		assert.Contains(t, got, "Biblioteka 日本語")
		assert.NotContains(t, got, "3456")
	})

	t.Run("corrupt script is not written", func(t *testing.T) {
		h, _ := newTestHandler(t, logger.LevelSilent)
		path := testutil.SetupScript(t, testutil.ScriptCorrupt)

		_, err := h.UpdateFile(path, "", types.DefaultRequest())
		require.Error(t, err)
		assert.Equal(t, types.FileCorrupt, types.CodeOf(err))
		assert.Equal(t, testutil.ReadFixture(t, testutil.ScriptCorrupt), []byte(readString(t, path)))
	})
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
