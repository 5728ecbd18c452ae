package mediatype

func withOptional(ct ContentType, key Token, value string) ContentType {
	if value != "" {
		ct.Params.Set(key, value)
	}
	return ct
}

func ApplicationJSON() ContentType {
	return ContentType{Type: "application", Subtype: "json"}
}

func OctetStream() ContentType {
	return ContentType{Type: "application", Subtype: "octet-stream"}
}

// FormURLEncoded returns application/x-www-form-urlencoded, with a charset
// parameter when charset is non-empty.
func FormURLEncoded(charset string) ContentType {
	return withOptional(ContentType{Type: "application", Subtype: "x-www-form-urlencoded"}, "charset", charset)
}

func MultipartFormData(boundary string) ContentType {
	ct := ContentType{Type: "multipart", Subtype: "form-data"}
	ct.Params.Set("boundary", boundary)
	return ct
}

func MultipartMixed(boundary string) ContentType {
	ct := ContentType{Type: "multipart", Subtype: "mixed"}
	ct.Params.Set("boundary", boundary)
	return ct
}

// TextPlain returns text/plain, with a charset parameter when charset is non-empty.
func TextPlain(charset string) ContentType {
	return withOptional(ContentType{Type: "text", Subtype: "plain"}, "charset", charset)
}
