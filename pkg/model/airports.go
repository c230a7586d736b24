// pkg/model/airports.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package model

import "github.com/globeview/globeview/pkg/math"

// builtinAirports maps well-known IATA codes to coordinates so that the
// common cases render even when no lookup service is available. Roughly
// the hundred busiest airports worldwide. Note that Point2LL stores
// longitude first.
var builtinAirports = map[string]math.Point2LL{
	// United States
	"ATL": {-84.43, 33.64},
	"AUS": {-97.67, 30.19},
	"BOS": {-71.01, 42.36},
	"BWI": {-76.67, 39.18},
	"CLT": {-80.94, 35.21},
	"DCA": {-77.04, 38.85},
	"DEN": {-104.67, 39.86},
	"DFW": {-97.04, 32.90},
	"DTW": {-83.35, 42.21},
	"EWR": {-74.17, 40.69},
	"FLL": {-80.15, 26.07},
	"HNL": {-157.92, 21.32},
	"IAD": {-77.46, 38.95},
	"IAH": {-95.34, 29.98},
	"JFK": {-73.78, 40.64},
	"LAS": {-115.15, 36.08},
	"LAX": {-118.41, 33.94},
	"MCO": {-81.31, 28.43},
	"MDW": {-87.75, 41.79},
	"MIA": {-80.29, 25.79},
	"MSP": {-93.22, 44.88},
	"ORD": {-87.91, 41.97},
	"PDX": {-122.60, 45.59},
	"PHX": {-112.01, 33.43},
	"SAN": {-117.19, 32.73},
	"SEA": {-122.31, 47.45},
	"SFO": {-122.38, 37.62},
	"SLC": {-111.98, 40.79},
	"STL": {-90.37, 38.75},
	"TPA": {-82.53, 27.98},

	// Canada, Mexico, Central/South America
	"BOG": {-74.15, 4.70},
	"CUN": {-86.87, 21.04},
	"EZE": {-58.54, -34.82},
	"GIG": {-43.25, -22.81},
	"GRU": {-46.47, -23.43},
	"LIM": {-77.11, -12.02},
	"MEX": {-99.07, 19.44},
	"PTY": {-79.38, 9.07},
	"SCL": {-70.79, -33.39},
	"YUL": {-73.74, 45.47},
	"YVR": {-123.18, 49.19},
	"YYZ": {-79.63, 43.68},

	// Europe
	"AMS": {4.76, 52.31},
	"ARN": {17.92, 59.65},
	"ATH": {23.94, 37.94},
	"BCN": {2.08, 41.30},
	"BER": {13.50, 52.36},
	"BRU": {4.48, 50.90},
	"CDG": {2.55, 49.01},
	"CPH": {12.65, 55.62},
	"DUB": {-6.27, 53.43},
	"DUS": {6.77, 51.29},
	"FCO": {12.25, 41.80},
	"FRA": {8.56, 50.04},
	"GVA": {6.11, 46.24},
	"HEL": {24.96, 60.32},
	"IST": {28.73, 41.28},
	"LGW": {-0.19, 51.15},
	"LHR": {-0.45, 51.47},
	"LIS": {-9.13, 38.77},
	"MAD": {-3.57, 40.47},
	"MAN": {-2.27, 53.35},
	"MUC": {11.79, 48.35},
	"MXP": {8.72, 45.63},
	"ORY": {2.38, 48.72},
	"OSL": {11.10, 60.19},
	"STN": {0.24, 51.89},
	"SVO": {37.41, 55.97},
	"VIE": {16.57, 48.11},
	"ZRH": {8.55, 47.46},

	// Middle East, Africa
	"AUH": {54.65, 24.43},
	"CAI": {31.41, 30.12},
	"CMN": {-7.59, 33.37},
	"CPT": {18.60, -33.96},
	"DOH": {51.61, 25.27},
	"DXB": {55.36, 25.25},
	"JED": {39.16, 21.68},
	"JNB": {28.25, -26.14},
	"LOS": {3.32, 6.58},
	"NBO": {36.93, -1.32},
	"RUH": {46.70, 24.96},
	"TLV": {34.89, 32.01},

	// Asia, Oceania
	"AKL": {174.79, -37.01},
	"BKK": {100.75, 13.69},
	"BLR": {77.71, 13.20},
	"BNE": {153.12, -27.38},
	"BOM": {72.87, 19.09},
	"CAN": {113.30, 23.39},
	"CGK": {106.66, -6.13},
	"DEL": {77.10, 28.57},
	"HAN": {105.81, 21.22},
	"HKG": {113.91, 22.31},
	"HND": {139.78, 35.55},
	"ICN": {126.44, 37.46},
	"KIX": {135.24, 34.43},
	"KUL": {101.71, 2.75},
	"MAA": {80.17, 12.99},
	"MEL": {144.84, -37.67},
	"MNL": {121.02, 14.51},
	"NRT": {140.39, 35.77},
	"PEK": {116.58, 40.08},
	"PER": {115.97, -31.94},
	"PVG": {121.81, 31.14},
	"SGN": {106.65, 10.82},
	"SIN": {103.99, 1.36},
	"SYD": {151.18, -33.95},
	"SZX": {113.81, 22.64},
	"TPE": {121.23, 25.08},
}
