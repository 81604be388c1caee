package dtm

import "encoding/binary"

type decodeFunc func(h *Header, b []byte)

// field is one positional entry of the header. A nil decode marks a reserved
// gap that is consumed but not interpreted.
type field struct {
	name   string
	width  int
	decode decodeFunc
}

// FieldInfo describes where a field lives in the header region.
type FieldInfo struct {
	Name     string
	Offset   int
	Width    int
	Reserved bool
}

// layout is the single source of truth for field order and width. The magic
// is checked separately before the table is walked.
var layout = []field{
	{"gameID", 6, func(h *Header, b []byte) { h.GameID = decodeText(b) }},
	{"isWiiGame", 1, func(h *Header, b []byte) { h.IsWiiGame = decodeBool(b) }},
	{"connectedControllers", 1, func(h *Header, b []byte) { h.ConnectedControllers = b[0] }},
	{"isFromSaveState", 1, func(h *Header, b []byte) { h.IsFromSaveState = decodeBool(b) }},
	{"frameCount", 8, func(h *Header, b []byte) { h.FrameCount = binary.LittleEndian.Uint64(b) }},
	{"inputFrameCount", 8, func(h *Header, b []byte) { h.InputFrameCount = binary.LittleEndian.Uint64(b) }},
	{"lagFrameCount", 8, func(h *Header, b []byte) { h.LagFrameCount = binary.LittleEndian.Uint64(b) }},
	{"uniqueID", 8, func(h *Header, b []byte) { h.UniqueID = binary.LittleEndian.Uint64(b) }},
	{"numRerecords", 4, func(h *Header, b []byte) { h.NumRerecords = binary.LittleEndian.Uint32(b) }},
	{"author", 32, func(h *Header, b []byte) { h.Author = decodeText(b) }},
	{"videoBackend", 16, func(h *Header, b []byte) { h.VideoBackend = decodeText(b) }},
	{"audioEmulator", 16, func(h *Header, b []byte) { h.AudioEmulator = decodeText(b) }},
	{"md5", md5Size, func(h *Header, b []byte) {
		copy(h.MD5Sum[:], b)
		h.MD5 = HexString(b)
	}},
	{"recordingStartTime", 8, func(h *Header, b []byte) { h.RecordingStartTime = binary.LittleEndian.Uint64(b) }},

	{"isSavedConfig", 1, func(h *Header, b []byte) { h.IsSavedConfig = decodeBool(b) }},
	{"usingIdleSkip", 1, func(h *Header, b []byte) { h.UsingIdleSkip = decodeBool(b) }},
	{"usingDualCore", 1, func(h *Header, b []byte) { h.UsingDualCore = decodeBool(b) }},
	{"usingProgressiveScan", 1, func(h *Header, b []byte) { h.UsingProgressiveScan = decodeBool(b) }},
	{"usingHLEDSP", 1, func(h *Header, b []byte) { h.UsingHLEDSP = decodeBool(b) }},
	{"usingFastDiscSpeed", 1, func(h *Header, b []byte) { h.UsingFastDiscSpeed = decodeBool(b) }},
	{"cpuCore", 1, func(h *Header, b []byte) { h.CPUCore = CPUCore(b[0]) }},
	{"isEFBAccessEnabled", 1, func(h *Header, b []byte) { h.IsEFBAccessEnabled = decodeBool(b) }},
	{"isEFBCopiesEnabled", 1, func(h *Header, b []byte) { h.IsEFBCopiesEnabled = decodeBool(b) }},
	{"usingEFBToTexture", 1, func(h *Header, b []byte) { h.UsingEFBToTexture = decodeBool(b) }},
	{"isEFBCopyCacheEnabled", 1, func(h *Header, b []byte) { h.IsEFBCopyCacheEnabled = decodeBool(b) }},
	{"isEmulatingEFBFormatChanges", 1, func(h *Header, b []byte) { h.IsEmulatingEFBFormatChanges = decodeBool(b) }},
	{"usingXFB", 1, func(h *Header, b []byte) { h.UsingXFB = decodeBool(b) }},
	{"usingRealXFB", 1, func(h *Header, b []byte) { h.UsingRealXFB = decodeBool(b) }},
	{"usingMemoryCard", 1, func(h *Header, b []byte) { h.UsingMemoryCard = decodeBool(b) }},
	{"usingClearSaves", 1, func(h *Header, b []byte) { h.UsingClearSaves = decodeBool(b) }},
	{"bongos", 1, func(h *Header, b []byte) { h.Bongos = b[0] }},
	{"syncGPU", 1, func(h *Header, b []byte) { h.SyncGPU = decodeBool(b) }},
	{"usingNetplay", 1, func(h *Header, b []byte) { h.UsingNetplay = decodeBool(b) }},
	{"reserved1", 13, nil},

	{"secondDiscName", 40, func(h *Header, b []byte) { h.SecondDiscName = decodeText(b) }},
	{"gitRevision", gitRevisionSize, func(h *Header, b []byte) {
		copy(h.GitRevisionSum[:], b)
		h.GitRevision = HexString(b)
	}},
	{"dspIROMHash", 4, func(h *Header, b []byte) { h.DSPIROMHash = binary.LittleEndian.Uint32(b) }},
	{"dspCoefHash", 4, func(h *Header, b []byte) { h.DSPCoefHash = binary.LittleEndian.Uint32(b) }},
	{"reserved2", 19, nil},
}

// maxFieldWidth sizes the decoder's scratch buffer.
const maxFieldWidth = 40

func init() {
	size := MagicSize
	for _, f := range layout {
		if f.width > maxFieldWidth {
			panic("dtm: field " + f.name + " wider than scratch buffer")
		}
		size += f.width
	}
	if size != HeaderSize {
		panic("dtm: layout does not add up to HeaderSize")
	}
}

// Layout returns the position of every field after the magic, in stream order.
func Layout() []FieldInfo {
	infos := make([]FieldInfo, 0, len(layout))
	offset := MagicSize
	for _, f := range layout {
		infos = append(infos, FieldInfo{
			Name:     f.name,
			Offset:   offset,
			Width:    f.width,
			Reserved: f.decode == nil,
		})
		offset += f.width
	}
	return infos
}

func decodeBool(b []byte) bool {
	return b[0] != 0
}
