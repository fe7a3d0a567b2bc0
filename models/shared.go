package models

// GeoPoint is a plain latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// ImageBucketKey is the logical address of an image bucket: Store names a
// namespace (e.g. "provider-images"), Bucket scopes one entity's images.
type ImageBucketKey struct {
	Store  string `bson:"store" json:"store"`
	Bucket string `bson:"bucket" json:"bucket"`
}

// ImageRef points at a single stored image.
type ImageRef struct {
	Store  string `bson:"store" json:"store"`
	Bucket string `bson:"bucket" json:"bucket"`
	Name   string `bson:"name" json:"name"`
}
