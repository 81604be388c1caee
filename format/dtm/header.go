package dtm

import "time"

// Header is the decoded movie header. It is produced in full by one decode
// pass and is handed out by value.
type Header struct {
	GameID               string `json:"game_id" yaml:"game_id"`
	IsWiiGame            bool   `json:"is_wii_game" yaml:"is_wii_game"`
	ConnectedControllers uint8  `json:"connected_controllers" yaml:"connected_controllers"`
	IsFromSaveState      bool   `json:"is_from_save_state" yaml:"is_from_save_state"`
	FrameCount           uint64 `json:"frame_count" yaml:"frame_count"`
	InputFrameCount      uint64 `json:"input_frame_count" yaml:"input_frame_count"`
	LagFrameCount        uint64 `json:"lag_frame_count" yaml:"lag_frame_count"`
	UniqueID             uint64 `json:"unique_id" yaml:"unique_id"`
	NumRerecords         uint32 `json:"num_rerecords" yaml:"num_rerecords"`
	Author               string `json:"author" yaml:"author"`
	VideoBackend         string `json:"video_backend" yaml:"video_backend"`
	AudioEmulator        string `json:"audio_emulator" yaml:"audio_emulator"`
	MD5                  string `json:"md5" yaml:"md5"`
	// Seconds since the Unix epoch, used to seed the emulated RTC.
	RecordingStartTime uint64 `json:"recording_start_time" yaml:"recording_start_time"`

	// When IsSavedConfig is set, every setting below was applied at startup.
	IsSavedConfig               bool    `json:"is_saved_config" yaml:"is_saved_config"`
	UsingIdleSkip               bool    `json:"using_idle_skip" yaml:"using_idle_skip"`
	UsingDualCore               bool    `json:"using_dual_core" yaml:"using_dual_core"`
	UsingProgressiveScan        bool    `json:"using_progressive_scan" yaml:"using_progressive_scan"`
	UsingHLEDSP                 bool    `json:"using_hle_dsp" yaml:"using_hle_dsp"`
	UsingFastDiscSpeed          bool    `json:"using_fast_disc_speed" yaml:"using_fast_disc_speed"`
	CPUCore                     CPUCore `json:"cpu_core" yaml:"cpu_core"`
	IsEFBAccessEnabled          bool    `json:"is_efb_access_enabled" yaml:"is_efb_access_enabled"`
	IsEFBCopiesEnabled          bool    `json:"is_efb_copies_enabled" yaml:"is_efb_copies_enabled"`
	UsingEFBToTexture           bool    `json:"using_efb_to_texture" yaml:"using_efb_to_texture"`
	IsEFBCopyCacheEnabled       bool    `json:"is_efb_copy_cache_enabled" yaml:"is_efb_copy_cache_enabled"`
	IsEmulatingEFBFormatChanges bool    `json:"is_emulating_efb_format_changes" yaml:"is_emulating_efb_format_changes"`
	UsingXFB                    bool    `json:"using_xfb" yaml:"using_xfb"`
	UsingRealXFB                bool    `json:"using_real_xfb" yaml:"using_real_xfb"`
	UsingMemoryCard             bool    `json:"using_memory_card" yaml:"using_memory_card"`
	// Create a fresh memory card when the movie is played back.
	UsingClearSaves bool  `json:"using_clear_saves" yaml:"using_clear_saves"`
	Bongos          uint8 `json:"bongos" yaml:"bongos"`
	SyncGPU         bool  `json:"sync_gpu" yaml:"sync_gpu"`
	UsingNetplay    bool  `json:"using_netplay" yaml:"using_netplay"`

	// Disc image to switch to in two-disc games.
	SecondDiscName string `json:"second_disc_name" yaml:"second_disc_name"`
	GitRevision    string `json:"git_revision" yaml:"git_revision"`
	DSPIROMHash    uint32 `json:"dsp_irom_hash" yaml:"dsp_irom_hash"`
	DSPCoefHash    uint32 `json:"dsp_coef_hash" yaml:"dsp_coef_hash"`

	// Raw digests behind MD5 and GitRevision.
	MD5Sum         [md5Size]byte         `json:"-" yaml:"-"`
	GitRevisionSum [gitRevisionSize]byte `json:"-" yaml:"-"`
}

// StartTime returns RecordingStartTime as a UTC time.
func (h Header) StartTime() time.Time {
	return time.Unix(int64(h.RecordingStartTime), 0).UTC() //nolint:gosec // seconds fit int64 for any real recording
}
