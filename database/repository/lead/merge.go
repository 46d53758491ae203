package leadRepo

import "framelight/models"

// FieldChanges computes which of the supplied fields would actually change
// the stored lead. A field counts as a change only when the input value is
// non-empty and differs from what is stored (everything differs from a nil
// lead). The result drives both the $set document of the Mongo upsert and
// the created/updated/unchanged classification.
func FieldChanges(existing *models.Lead, fields models.LeadFields) map[string]string {
	changes := make(map[string]string)

	put := func(key, incoming, stored string) {
		if incoming != "" && incoming != stored {
			changes[key] = incoming
		}
	}

	var stored models.Lead
	if existing != nil {
		stored = *existing
	}
	put("name", fields.Name, stored.Name)
	put("email", fields.Email, stored.Email)
	put("phone", fields.Phone, stored.Phone)
	put("shoot_type", fields.ShootType, stored.ShootType)
	put("notes", fields.Notes, stored.Notes)

	return changes
}

// ApplyChanges writes a change set onto a lead in place.
func ApplyChanges(lead *models.Lead, changes map[string]string) {
	for key, value := range changes {
		switch key {
		case "name":
			lead.Name = value
		case "email":
			lead.Email = value
		case "phone":
			lead.Phone = value
		case "shoot_type":
			lead.ShootType = value
		case "notes":
			lead.Notes = value
		}
	}
}
