package transform

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/townbook/client-go/types"
)

// businessRecord wraps the two levels a business payload can carry data
// on: the top-level record and an optional nested selectedApprovedBusiness
// record. Most fields prefer the nested record when it exists; documented
// exceptions (id, images, timestamps) read both levels explicitly.
type businessRecord struct {
	top    Raw
	nested Raw
}

// get resolves one field through an ordered alias chain, nested record
// first, then top level, first non-empty value wins per key.
func (r businessRecord) get(keys ...string) interface{} {
	for _, key := range keys {
		if r.nested != nil {
			if v, ok := r.nested[key]; ok && v != nil {
				return v
			}
		}
		if v, ok := r.top[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func (r businessRecord) str(keys ...string) string {
	for _, key := range keys {
		if r.nested != nil {
			if s := asString(r.nested[key]); s != "" {
				return s
			}
		}
		if s := asString(r.top[key]); s != "" {
			return s
		}
	}
	return ""
}

// Business maps one raw backend business record into the canonical shape.
// It is total: any input, however incomplete, yields a fully populated
// Business with safe defaults.
func Business(raw Raw) types.Business {
	if raw == nil {
		raw = Raw{}
	}
	rec := businessRecord{top: raw, nested: asObject(raw["selectedApprovedBusiness"])}

	b := types.Business{
		ID:                resolveBusinessID(rec),
		BusinessName:      rec.str("businessName"),
		OwnerName:         rec.str("ownerName"),
		Description:       rec.str("description"),
		BusinessCategory:  rec.str("businessCategory", "category"),
		Products:          rec.str("products"),
		NoOfEmployee:      asInt(rec.get("noOfEmployee")),
		EstablishedIn:     rec.str("establishedIn"),
		City:              rec.str("city"),
		State:             rec.str("state"),
		Pincode:           rec.str("pincode"),
		Whatsapp:          rec.str("whatsapp", "contactNumber"),
		FacebookLink:      rec.str("facebookLink"),
		InstagramLink:     rec.str("instagramLink"),
		TwitterLink:       rec.str("twitterLink"),
		Logo:              rec.str("logo"),
		Banner:            rec.str("banner"),
		Selfie:            rec.str("selfie"),
		Rating:            asFloat(rec.get("rating")),
		SalesPersonID:     rec.str("salesPersonId"),
		SalesPersonUserID: rec.str("salesPersonUserId"),
	}

	// Addresses: a scalar address and an ordered street-address list must
	// both always exist, synthesized from each other when one is missing.
	streets := asStrings(rec.get("streetAddresses"))
	address := firstNonEmpty(rec.str("address", "businessLocation"), first(streets))
	if len(streets) == 0 && address != "" {
		streets = []string{address}
	}
	b.Address = address
	b.StreetAddresses = nonNil(streets)

	// Website links arrive as an array or a single string under either key.
	links := stringOrList(rec.get("websiteLinks", "websiteLink"))
	b.WebsiteLinks = nonNil(links)
	b.WebsiteLink = first(links)

	// Social presence flags. The website flag checks the literal string
	// "true" alongside boolean true while the other three check truthiness
	// of the profile fields; the backend has always been inconsistent here
	// and listing pages depend on the current behavior.
	b.Facebook = yesNo(truthy(rec.get("facebookProfile")))
	b.Instagram = yesNo(truthy(rec.get("instagramProfile")))
	b.Twitter = yesNo(truthy(rec.get("twitterProfile")))
	b.Website = yesNo(isWebsiteFlagSet(rec.get("website")))

	// Media: nested businessImages win when non-empty, then top-level
	// fileUrls.
	images := asStrings(rec.get("businessImages"))
	if len(images) == 0 {
		images = asStrings(raw["fileUrls"])
	}
	b.Images = nonNil(images)

	b.Status = normalizeStatus(rec.str("status"))
	b.Featured = isFeatured(rec.get("featured"))

	b.CreatedAt = resolveTime(raw["createdAt"], rec.get("createdAt"), rec.get("timestamp"))
	b.UpdatedAt = resolveTime(raw["updatedAt"], rec.get("updatedAt"), rec.get("timestamp"))

	return b
}

// BusinessArray maps a raw list payload. Anything that is not an array
// yields an empty slice; individual entries that are not objects degrade
// to fully defaulted records, matching the single-record contract.
func BusinessArray(raw interface{}) []types.Business {
	arr, ok := raw.([]interface{})
	if !ok {
		if raw != nil {
			logrus.WithField("type", typeName(raw)).Warn("business payload is not an array")
		}
		return []types.Business{}
	}
	out := make([]types.Business, 0, len(arr))
	for _, item := range arr {
		out = append(out, Business(asObject(item)))
	}
	return out
}

// resolveBusinessID prefers the top-level identifiers over the nested
// record's, unlike every other field. generatedid is the legacy Firestore
// import key and loses to both.
func resolveBusinessID(rec businessRecord) string {
	return firstNonEmpty(
		asString(rec.top["_id"]),
		asString(rec.top["id"]),
		asString(nestedValue(rec.nested, "_id")),
		asString(nestedValue(rec.nested, "id")),
		asString(nestedValue(rec.nested, "generatedid")),
		asString(rec.top["generatedid"]),
	)
}

func nestedValue(m Raw, key string) interface{} {
	if m == nil {
		return nil
	}
	return m[key]
}

func normalizeStatus(status string) string {
	switch strings.ToLower(status) {
	case types.StatusApproved:
		return types.StatusApproved
	case types.StatusRejected:
		return types.StatusRejected
	default:
		return types.StatusPending
	}
}

// isFeatured accepts the four truthy spellings seen in production data.
func isFeatured(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "YES" || t == "yes"
	case float64:
		return t == 1
	default:
		return false
	}
}

// isWebsiteFlagSet checks boolean true or the literal string "true".
func isWebsiteFlagSet(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return v == "true"
}

func yesNo(set bool) string {
	if set {
		return types.FlagYes
	}
	return types.FlagNo
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func typeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case map[string]interface{}:
		return "object"
	default:
		return "unknown"
	}
}
