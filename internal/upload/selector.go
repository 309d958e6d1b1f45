package upload

// Capability says whether the remote store is fully configured. Computed
// once at process start and injected; call sites must not re-derive it from
// the environment.
//
// With DirectUpload set, accepted files are streamed to the store while the
// multipart form is parsed. Without it, files are buffered in memory and
// uploaded explicitly by the adapter.
type Capability struct {
	DirectUpload bool
}

// DetectCapability computes the capability from the joint presence of the
// three remote-store credentials. Absence is not an error; it selects the
// buffered fallback path.
func DetectCapability(bucket, projectID, credentials string) Capability {
	return Capability{
		DirectUpload: bucket != "" && projectID != "" && credentials != "",
	}
}
