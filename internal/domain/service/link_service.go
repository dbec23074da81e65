package service

// LinkService builds the shareable WhatsApp deep link for a business.
type LinkService interface {
	// BuildLink returns the wa.me URL whose text payload greets the
	// business and carries its public slug. Byte-identical output for
	// identical inputs.
	BuildLink(businessName, slug string) string
}
