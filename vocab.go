package mediarss

import "strings"

// vocabulary maps the variants of a closed token set to their wire form and
// back. The zero variant of every set has no token: its name is "" and
// unknown or empty tokens resolve to it.
type vocabulary[T comparable] struct {
	names  map[T]string
	values map[string]T
}

func newVocabulary[T comparable](names map[T]string) vocabulary[T] {
	self := vocabulary[T]{
		names:  names,
		values: make(map[string]T, len(names)),
	}
	for value, name := range names {
		self.values[name] = value
	}
	return self
}

func (self vocabulary[T]) name(value T) string { return self.names[value] }

func (self vocabulary[T]) value(name string) T {
	return self.values[strings.ToLower(strings.TrimSpace(name))]
}

// Medium is the type of a media object, when it can't be derived from its
// MIME type.
type Medium int

const (
	MediumNone Medium = iota
	MediumImage
	MediumAudio
	MediumVideo
	MediumDocument
	MediumExecutable
)

var mediumVocab = newVocabulary(map[Medium]string{
	MediumImage:      "image",
	MediumAudio:      "audio",
	MediumVideo:      "video",
	MediumDocument:   "document",
	MediumExecutable: "executable",
})

func (self Medium) String() string { return mediumVocab.name(self) }

// MediumByName resolves a medium token case-insensitively. Unknown or empty
// tokens yield MediumNone.
func MediumByName(name string) Medium { return mediumVocab.value(name) }

// Expression states whether a media object is a sample, the full version,
// or a continuous stream.
type Expression int

const (
	ExpressionNone Expression = iota
	ExpressionSample
	ExpressionFull
	ExpressionNonstop
)

var expressionVocab = newVocabulary(map[Expression]string{
	ExpressionSample:  "sample",
	ExpressionFull:    "full",
	ExpressionNonstop: "nonstop",
})

func (self Expression) String() string { return expressionVocab.name(self) }

func ExpressionByName(name string) Expression {
	return expressionVocab.value(name)
}

// TextType is the encoding of a text construct: plain text or entity
// encoded html.
type TextType int

const (
	TextTypeNone TextType = iota
	TextTypePlain
	TextTypeHTML
)

var textTypeVocab = newVocabulary(map[TextType]string{
	TextTypePlain: "plain",
	TextTypeHTML:  "html",
})

func (self TextType) String() string { return textTypeVocab.name(self) }

func TextTypeByName(name string) TextType { return textTypeVocab.value(name) }

// HashAlgorithm is the digest algorithm of a media:hash value.
type HashAlgorithm int

const (
	HashAlgorithmNone HashAlgorithm = iota
	HashMD5
	HashSHA1
)

var hashAlgorithmVocab = newVocabulary(map[HashAlgorithm]string{
	HashMD5:  "md5",
	HashSHA1: "sha-1",
})

func (self HashAlgorithm) String() string {
	return hashAlgorithmVocab.name(self)
}

func HashAlgorithmByName(name string) HashAlgorithm {
	return hashAlgorithmVocab.value(name)
}

// RatingScheme is the URI scheme a media:rating value belongs to.
type RatingScheme int

const (
	RatingSchemeNone RatingScheme = iota
	RatingSchemeSimple
	RatingSchemeICRA
	RatingSchemeMPAA
	RatingSchemeVChip
)

var ratingSchemeVocab = newVocabulary(map[RatingScheme]string{
	RatingSchemeSimple: "urn:simple",
	RatingSchemeICRA:   "urn:icra",
	RatingSchemeMPAA:   "urn:mpaa",
	RatingSchemeVChip:  "urn:v-chip",
})

func (self RatingScheme) String() string { return ratingSchemeVocab.name(self) }

func RatingSchemeByName(name string) RatingScheme {
	return ratingSchemeVocab.value(name)
}

// RestrictionRelationship states whether a media:restriction allows or
// denies the entries it lists.
type RestrictionRelationship int

const (
	RelationshipNone RestrictionRelationship = iota
	RelationshipAllow
	RelationshipDeny
)

var relationshipVocab = newVocabulary(map[RestrictionRelationship]string{
	RelationshipAllow: "allow",
	RelationshipDeny:  "deny",
})

func (self RestrictionRelationship) String() string {
	return relationshipVocab.name(self)
}

func RelationshipByName(name string) RestrictionRelationship {
	return relationshipVocab.value(name)
}

// RestrictionType states what kind of entries a media:restriction lists.
type RestrictionType int

const (
	RestrictionTypeNone RestrictionType = iota
	RestrictionTypeCountry
	RestrictionTypeURI
)

var restrictionTypeVocab = newVocabulary(map[RestrictionType]string{
	RestrictionTypeCountry: "country",
	RestrictionTypeURI:     "uri",
})

func (self RestrictionType) String() string {
	return restrictionTypeVocab.name(self)
}

func RestrictionTypeByName(name string) RestrictionType {
	return restrictionTypeVocab.value(name)
}
