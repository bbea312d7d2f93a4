package tables

import "github.com/llehouerou/go-aacdec/internal/config"

// predSFBMax contains max prediction SFB per sample rate index.
// Source: ~/dev/faad2/libfaad/common.c:75-78
var predSFBMax = [12]uint8{
	33, 33, 38, 40, 40, 40, 41, 41, 37, 37, 37, 34,
}

// MaxPredSFB returns the maximum prediction scalefactor band for a sample rate index.
// Returns 0 for invalid indices.
// Source: ~/dev/faad2/libfaad/common.c:73-85
func MaxPredSFB(srIndex uint8) uint8 {
	if int(srIndex) >= len(predSFBMax) {
		return 0
	}
	return predSFBMax[srIndex]
}

// tnsSFBMax contains max TNS SFB values.
// Columns: [Main/LC long, Main/LC short, SSR long, SSR short]
// Source: ~/dev/faad2/libfaad/common.c:96-114
var tnsSFBMax = [16][4]uint8{
	{31, 9, 28, 7},  // 96000
	{31, 9, 28, 7},  // 88200
	{34, 10, 27, 7}, // 64000
	{40, 14, 26, 6}, // 48000
	{42, 14, 26, 6}, // 44100
	{51, 14, 26, 6}, // 32000
	{46, 14, 29, 7}, // 24000
	{46, 14, 29, 7}, // 22050
	{42, 14, 23, 8}, // 16000
	{42, 14, 23, 8}, // 12000
	{42, 14, 23, 8}, // 11025
	{39, 14, 19, 7}, // 8000
	{39, 14, 19, 7}, // 7350
}

// MaxTNSSFB returns the maximum TNS scalefactor band.
// Source: ~/dev/faad2/libfaad/common.c:87-121
func MaxTNSSFB(srIndex uint8, objectType config.ObjectType, isShort bool) uint8 {
	if int(srIndex) >= len(tnsSFBMax) {
		return 0
	}
	i := 0
	if isShort {
		i = 1
	}
	if objectType == config.ObjectTypeSSR {
		i += 2
	}
	return tnsSFBMax[srIndex][i]
}
