package identity

import (
	"artbid-client/internal/models"
)

// RawSession is the identity payload as delivered by the auth layer. The
// backend has historically exposed the signed-in artist under two different
// fields; both are carried here so normalization happens in exactly one
// place, at session resolution, never inside decision functions.
type RawSession struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	ArtistID      string `json:"artist_id"`
	ArtistsID     string `json:"artists_id"` // legacy field name, same identifier
	ProfileArtist string `json:"profile_artist_id"`
}

// Resolve normalizes a raw session into the canonical Viewer. Unknown or
// empty roles resolve to guest; the artist identifier prefers artist_id, then
// the legacy artists_id, then the profile field.
func Resolve(raw RawSession) models.Viewer {
	viewer := models.Viewer{
		UserID:   raw.UserID,
		Role:     normalizeRole(raw.Role),
		ArtistID: canonicalArtistID(raw),
	}
	if viewer.Role != models.RoleArtist {
		viewer.ArtistID = ""
	}
	return viewer
}

func normalizeRole(role string) models.Role {
	switch models.Role(role) {
	case models.RoleAdmin, models.RoleRegularUser, models.RoleArtist:
		return models.Role(role)
	default:
		return models.RoleGuest
	}
}

func canonicalArtistID(raw RawSession) string {
	if raw.ArtistID != "" {
		return raw.ArtistID
	}
	if raw.ArtistsID != "" {
		return raw.ArtistsID
	}
	return raw.ProfileArtist
}
