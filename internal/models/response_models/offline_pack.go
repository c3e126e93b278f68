package response_models

// OfflinePack is the serialized guide snapshot a client can hold while
// traveling without connectivity. Valid until ExpiresAt (30 days).
type OfflinePack struct {
	Country      CountryDetail    `json:"country"`
	Phrases      []PhraseResponse `json:"phrases"`
	DownloadedAt int64            `json:"downloaded_at"`
	ExpiresAt    int64            `json:"expires_at"`
}
