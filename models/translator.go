// models/translator.go
package models

// Translator is a directory profile for a sign-language interpretation
// provider. Exactly one profile belongs to a given platform account; admins
// create them on behalf of interpreters.
type Translator struct {
	ID           int64  `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Address      string `bson:"address" json:"address"`
	Availability bool   `bson:"availability" json:"availability"`
	ProfilePic   string `bson:"profile_pic,omitempty" json:"profile_pic,omitempty"`
	UserID       int64  `bson:"user_id" json:"user_id"`
}

// TranslatorProfile is the create/update payload for a translator record.
// Updates are full replaces: fields omitted by the caller fall back to the
// type's zero values, mirroring the create schema.
type TranslatorProfile struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Availability bool   `json:"availability"`
	ProfilePic   string `json:"profile_pic,omitempty"`
}
