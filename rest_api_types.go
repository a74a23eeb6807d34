package hydrus

import "github.com/anitschke/go-hydrus/types"

// Every Client API response carries the remote version alongside its payload,
// so response types embed APIVersionResponse.

// FileSelector selects the files a call acts on. Hydrus expects one of the
// fields to be set.
type FileSelector struct {
	FileID  int64    `json:"file_id,omitempty"`
	FileIDs []int64  `json:"file_ids,omitempty"`
	Hash    string   `json:"hash,omitempty" validate:"omitempty,len=64,hexadecimal"`
	Hashes  []string `json:"hashes,omitempty" validate:"omitempty,dive,len=64,hexadecimal"`
}

// FileDomain narrows a call to a set of file services.
type FileDomain struct {
	FileServiceKey         string   `json:"file_service_key,omitempty"`
	FileServiceKeys        []string `json:"file_service_keys,omitempty"`
	DeletedFileServiceKey  string   `json:"deleted_file_service_key,omitempty"`
	DeletedFileServiceKeys []string `json:"deleted_file_service_keys,omitempty"`
}

// SingleFile selects one file by hash or id.
type SingleFile struct {
	FileID int64  `json:"file_id,omitempty"`
	Hash   string `json:"hash,omitempty" validate:"omitempty,len=64,hexadecimal"`
}

func (f SingleFile) check(op string) error {
	return requireOne(op, "file_id, hash", f.FileID != 0, f.Hash != "")
}

type ServiceObject struct {
	Name       string            `json:"name"`
	Type       types.ServiceType `json:"type"`
	TypePretty string            `json:"type_pretty"`

	// StarShape, MinStars and MaxStars are only present for numerical and
	// like/dislike rating services.
	StarShape string `json:"star_shape,omitempty"`
	MinStars  int    `json:"min_stars,omitempty"`
	MaxStars  int    `json:"max_stars,omitempty"`
}

// Service is a ServiceObject together with the key that identifies it.
type Service struct {
	ServiceObject
	ServiceKey string `json:"service_key"`
}

// ServicesByKey maps service keys to their descriptions.
type ServicesByKey map[string]ServiceObject

// HashesOf renders hashes in the hex form option structs expect.
func HashesOf(hashes ...types.Hash) []string {
	out := make([]string, len(hashes))
	for i, h := range hashes {
		out[i] = h.String()
	}
	return out
}

func (f FileSelector) check(op string) error {
	if f.FileID == 0 && len(f.FileIDs) == 0 && f.Hash == "" && len(f.Hashes) == 0 {
		return &InvalidArgumentError{Op: op, Reason: "one of file_id, file_ids, hash, hashes must be set"}
	}
	return nil
}
