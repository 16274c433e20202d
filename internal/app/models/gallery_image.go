package models

// GalleryImage is a photo hosted on an external asset host.
type GalleryImage struct {
	ID      string `yaml:"id" json:"id"`
	DriveID string `yaml:"drive_id" json:"driveId"`
	Caption string `yaml:"caption" json:"caption"`
	Date    string `yaml:"date,omitempty" json:"date,omitempty"`
}
