package constants

import "strings"

// Prefix kode HASC yang didukung (negara program AKILIMO).
var SupportedHascPrefixes = []string{"NG.", "TZ.", "KE.", "RW."}

func HasSupportedHascPrefix(code string) bool {
	for _, p := range SupportedHascPrefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

// Kosakata crop yang dikenal; nilai lain masuk ke "other".
var KnownCrops = []string{"cassava", "maize", "rice", "yam", "sorghum"}

func IsKnownCrop(crop string) bool {
	c := strings.ToLower(strings.TrimSpace(crop))
	for _, k := range KnownCrops {
		if k == c {
			return true
		}
	}
	return false
}
