package dtm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// headerBuilder writes field values at their layout offsets.
type headerBuilder struct {
	t       *testing.T
	buf     []byte
	offsets map[string]FieldInfo
}

func newHeaderBuilder(t *testing.T) *headerBuilder {
	t.Helper()
	b := &headerBuilder{
		t:       t,
		buf:     make([]byte, HeaderSize),
		offsets: make(map[string]FieldInfo),
	}
	copy(b.buf, Magic[:])
	for _, fi := range Layout() {
		b.offsets[fi.Name] = fi
	}
	return b
}

func (b *headerBuilder) slot(name string, width int) []byte {
	b.t.Helper()
	fi, ok := b.offsets[name]
	require.True(b.t, ok, "unknown field %s", name)
	require.Equal(b.t, fi.Width, width, "width of %s", name)
	return b.buf[fi.Offset : fi.Offset+fi.Width]
}

func (b *headerBuilder) bytes(name string, v []byte) *headerBuilder {
	b.t.Helper()
	fi := b.offsets[name]
	require.LessOrEqual(b.t, len(v), fi.Width)
	copy(b.slot(name, fi.Width), v)
	return b
}

func (b *headerBuilder) text(name, v string) *headerBuilder {
	b.t.Helper()
	return b.bytes(name, []byte(v))
}

func (b *headerBuilder) u8(name string, v uint8) *headerBuilder {
	b.t.Helper()
	b.slot(name, 1)[0] = v
	return b
}

func (b *headerBuilder) flag(name string, v bool) *headerBuilder {
	b.t.Helper()
	if v {
		return b.u8(name, 1)
	}
	return b.u8(name, 0)
}

func (b *headerBuilder) u32(name string, v uint32) *headerBuilder {
	b.t.Helper()
	binary.LittleEndian.PutUint32(b.slot(name, 4), v)
	return b
}

func (b *headerBuilder) u64(name string, v uint64) *headerBuilder {
	b.t.Helper()
	binary.LittleEndian.PutUint64(b.slot(name, 8), v)
	return b
}

func (b *headerBuilder) build() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// sampleHeader returns a header with every field set to a distinct value and
// the Header those bytes should decode to.
func sampleHeader(t *testing.T) ([]byte, Header) {
	t.Helper()
	md5 := []byte{0x0A, 0xFF, 0x10, 0x00, 0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x0F, 0xF0, 0x11, 0x99}
	rev := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}

	b := newHeaderBuilder(t).
		text("gameID", "GMSE01").
		flag("isWiiGame", false).
		u8("connectedControllers", 2).
		flag("isFromSaveState", true).
		u64("frameCount", 123456).
		u64("inputFrameCount", 654321).
		u64("lagFrameCount", 42).
		u64("uniqueID", 0x0102030405060708).
		u32("numRerecords", 9001).
		text("author", "speedrunner").
		text("videoBackend", "OGL").
		text("audioEmulator", "HLE").
		bytes("md5", md5).
		u64("recordingStartTime", 1700000000).
		flag("isSavedConfig", true).
		flag("usingIdleSkip", true).
		flag("usingDualCore", false).
		flag("usingProgressiveScan", true).
		flag("usingHLEDSP", true).
		flag("usingFastDiscSpeed", false).
		u8("cpuCore", 1).
		flag("isEFBAccessEnabled", true).
		flag("isEFBCopiesEnabled", false).
		flag("usingEFBToTexture", true).
		flag("isEFBCopyCacheEnabled", false).
		flag("isEmulatingEFBFormatChanges", true).
		flag("usingXFB", false).
		flag("usingRealXFB", true).
		flag("usingMemoryCard", true).
		flag("usingClearSaves", false).
		u8("bongos", 3).
		flag("syncGPU", true).
		flag("usingNetplay", false).
		text("secondDiscName", "disc2.iso").
		bytes("gitRevision", rev).
		u32("dspIROMHash", 0xD5F3E6A4).
		u32("dspCoefHash", 0x00000F0F)

	want := Header{
		GameID:                      "GMSE01",
		ConnectedControllers:        2,
		IsFromSaveState:             true,
		FrameCount:                  123456,
		InputFrameCount:             654321,
		LagFrameCount:               42,
		UniqueID:                    0x0102030405060708,
		NumRerecords:                9001,
		Author:                      "speedrunner",
		VideoBackend:                "OGL",
		AudioEmulator:               "HLE",
		MD5:                         "AFF100123456789ABCDEFFF01199",
		RecordingStartTime:          1700000000,
		IsSavedConfig:               true,
		UsingIdleSkip:               true,
		UsingProgressiveScan:        true,
		UsingHLEDSP:                 true,
		CPUCore:                     CPUCoreJIT,
		IsEFBAccessEnabled:          true,
		UsingEFBToTexture:           true,
		IsEmulatingEFBFormatChanges: true,
		UsingRealXFB:                true,
		UsingMemoryCard:             true,
		Bongos:                      3,
		SyncGPU:                     true,
		SecondDiscName:              "disc2.iso",
		GitRevision:                 "DEADBEEF0123456789ABCDEF",
		DSPIROMHash:                 0xD5F3E6A4,
		DSPCoefHash:                 0x00000F0F,
	}
	copy(want.MD5Sum[:], md5)
	copy(want.GitRevisionSum[:], rev)

	return b.build(), want
}
