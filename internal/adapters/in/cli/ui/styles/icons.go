package styles

// Nerd Font icons.
const (
	IconSuccess  = "" // nf-fa-check (U+F00C)
	IconError    = "" // nf-fa-times (U+F00D)
	IconWarning  = "" // nf-fa-exclamation_triangle (U+F071)
	IconInfo     = "" // nf-fa-info_circle (U+F05A)
	IconDatabase = "" // nf-fa-database (U+F1C0)
	IconUpload   = "" // nf-fa-cloud_upload (U+F0EE)
	IconDownload = "" // nf-fa-cloud_download (U+F0ED)
	IconDelete   = "" // nf-fa-trash (U+F1F8)
	IconBullet   = "▸"
)

// ASCII fallback alternatives for terminals without Nerd Fonts.
const (
	AsciiSuccess = "[OK]"
	AsciiError   = "[X]"
	AsciiWarning = "[!]"
	AsciiInfo    = "[i]"
	AsciiBullet  = ">"
)
