package models

// ImageBucket is a directory record mapping a (Store, Bucket) key to the
// ordered list of image names currently stored there. At most one document
// exists per key pair. The directory does not touch blob storage itself;
// callers keep ImageNames in sync with actual uploads and deletes.
type ImageBucket struct {
	Store      string   `bson:"store" json:"store"`
	Bucket     string   `bson:"bucket" json:"bucket"`
	ImageNames []string `bson:"imageNames" json:"imageNames"`
}

// Key returns the bucket's logical address.
func (b *ImageBucket) Key() ImageBucketKey {
	return ImageBucketKey{Store: b.Store, Bucket: b.Bucket}
}
