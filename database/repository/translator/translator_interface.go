package translatorRepo

import "studeaf/models"

// TranslatorRepository defines methods for translator directory data access.
type TranslatorRepository interface {
	// Create inserts a new translator record, assigning its id.
	Create(translator *models.Translator) error
	// GetByID retrieves a translator by its unique ID.
	GetByID(id int64) (*models.Translator, error)
	// GetByUserID retrieves the translator profile owned by a user.
	GetByUserID(userID int64) (*models.Translator, error)
	// List returns a page of translators plus the total count.
	List(offset, limit int64) ([]models.Translator, int64, error)
	// Update fully replaces a translator's profile fields.
	Update(translator *models.Translator) error
	// Delete removes a translator record by its ID.
	Delete(id int64) error
}
