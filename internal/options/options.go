// Package options builds the engine option set from safe defaults and
// directive overrides.
package options

import (
	"archivarr/internal/domain/consts"
)

// Postprocessor keys and stages understood by the engine.
const (
	PPExtractAudio   = "FFmpegExtractAudio"
	PPMetadata       = "FFmpegMetadata"
	StagePostProcess = "post_process"
)

// Postprocessor is one post-download transformation step.
type Postprocessor struct {
	Key              string
	PreferredCodec   string
	PreferredQuality string
	AddMetadata      bool
	When             string
}

// Options is the full option set handed to the download engine.
//
// Options not explicitly overridden keep their default values.
type Options struct {
	Format           string
	MinSleepInterval int
	MaxSleepInterval int
	NoOverwrites     bool
	ContinueDL       bool
	DownloadArchive  string
	CookieFile       string
	CookieSource     string // browser profile fallback, e.g. "firefox"
	OutputTemplate   string
	PreferFFmpeg     bool
	DateAfter        string // engine compact form (YYYYMMDD)
	DateBefore       string
	Verbose          bool
	MatchTitle       string
	RejectTitle      string
	Postprocessors   []Postprocessor
	Filter           *MatchFilter
}

// Defaults returns the safe default option set: audio-first format
// preference, a conservative sleep-interval range, resume-and-no-clobber
// download semantics, and a two-stage postprocessor chain (extract audio to
// FLAC, then attach metadata tags).
func Defaults() *Options {
	o := &Options{
		Format:           "bestaudio/best",
		MinSleepInterval: 10,
		MaxSleepInterval: 60,
		NoOverwrites:     true,
		ContinueDL:       true,
		DownloadArchive:  consts.DownloadArchive,
		CookieFile:       consts.CookieFileName,
		OutputTemplate:   consts.OutputTemplate,
		PreferFFmpeg:     true,
		Postprocessors: []Postprocessor{
			{
				Key:              PPExtractAudio,
				PreferredCodec:   "flac",
				PreferredQuality: "0",
				When:             StagePostProcess,
			},
			{
				Key:         PPMetadata,
				AddMetadata: true,
				When:        StagePostProcess,
			},
		},
	}
	o.RebuildFilter()
	return o
}

// setAudioCodec mutates the codec of the existing extract-audio
// postprocessor entry. Returns false if the chain has no such entry.
func (o *Options) setAudioCodec(codec string) bool {
	for i := range o.Postprocessors {
		if o.Postprocessors[i].Key == PPExtractAudio {
			o.Postprocessors[i].PreferredCodec = codec
			return true
		}
	}
	return false
}
