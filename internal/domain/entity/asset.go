package entity

// Asset is the durable pointer an entity record keeps to an object in the
// remote store. RemoteID is the store-side object name and is the handle
// used for deletion; URL is what the public site renders.
type Asset struct {
	URL       string `json:"url" firestore:"url"`
	RemoteID  string `json:"remote_id" firestore:"remoteId"`
	IsPrimary bool   `json:"is_primary,omitempty" firestore:"isPrimary,omitempty"`
}
