// Package command holds the argument strings understood by the download engine.
package command

const (
	YTDLP = "yt-dlp"
)

// General
const (
	AudioFormat        = "--audio-format"
	AudioQuality       = "--audio-quality"
	CookiePath         = "--cookies"
	CookiesFromBrowser = "--cookies-from-browser"
	DateAfter          = "--dateafter"
	DateBefore         = "--datebefore"
	DownloadArchive    = "--download-archive"
	EmbedMetadata      = "--embed-metadata"
	ExtractAudio       = "--extract-audio"
	Format             = "-f"
	MatchFilters       = "--match-filters"
	MaxSleepInterval   = "--max-sleep-interval"
	MinSleepInterval   = "--min-sleep-interval"
	NoContinue         = "--no-continue"
	NoOverwrites       = "--no-overwrites"
	Output             = "-o"
	PreferFFmpeg       = "--prefer-ffmpeg"
	Verbose            = "--verbose"
)
