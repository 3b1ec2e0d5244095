// SPDX-License-Identifier: MIT

package data

import "fmt"

// absorptionPaths maps the identifiers of the published CKD absorption
// datasets (AFGL 1986 atmosphere family) to their logical paths.
var absorptionPaths = map[string]string{
	"afgl_1986-us_standard-10nm":           "ckd/absorption/10nm/afgl_1986-us_standard-10nm.nc",
	"afgl_1986-us_standard-1nm":            "ckd/absorption/1nm/afgl_1986-us_standard-1nm.nc",
	"afgl_1986-us_standard-10nm-v3":        "ckd/absorption/10nm/afgl_1986-us_standard-10nm-v3.nc",
	"afgl_1986-us_standard-1nm-v3":         "ckd/absorption/1nm/afgl_1986-us_standard-1nm-v3.nc",
	"afgl_1986-midlatitude_summer-10nm-v3": "ckd/absorption/10nm/afgl_1986-midlatitude_summer-10nm-v3.nc",
	"afgl_1986-midlatitude_summer-1nm-v3":  "ckd/absorption/1nm/afgl_1986-midlatitude_summer-1nm-v3.nc",
	"afgl_1986-midlatitude_winter-10nm-v3": "ckd/absorption/10nm/afgl_1986-midlatitude_winter-10nm-v3.nc",
	"afgl_1986-midlatitude_winter-1nm-v3":  "ckd/absorption/1nm/afgl_1986-midlatitude_winter-1nm-v3.nc",
	"afgl_1986-subarctic_summer-10nm-v3":   "ckd/absorption/10nm/afgl_1986-subarctic_summer-10nm-v3.nc",
	"afgl_1986-subarctic_summer-1nm-v3":    "ckd/absorption/1nm/afgl_1986-subarctic_summer-1nm-v3.nc",
	"afgl_1986-subarctic_winter-10nm-v3":   "ckd/absorption/10nm/afgl_1986-subarctic_winter-10nm-v3.nc",
	"afgl_1986-subarctic_winter-1nm-v3":    "ckd/absorption/1nm/afgl_1986-subarctic_winter-1nm-v3.nc",
	"afgl_1986-tropical-10nm-v3":           "ckd/absorption/10nm/afgl_1986-tropical-10nm-v3.nc",
	"afgl_1986-tropical-1nm-v3":            "ckd/absorption/1nm/afgl_1986-tropical-1nm-v3.nc",
}

// AbsorptionPath returns the logical path of a published CKD absorption
// dataset, or ErrNotFound for an unregistered identifier.
func AbsorptionPath(id string) (string, error) {
	p, ok := absorptionPaths[id]
	if !ok {
		return "", fmt.Errorf("%w: absorption dataset %q", ErrNotFound, id)
	}
	return p, nil
}

// AbsorptionIDs returns the identifiers of all published CKD absorption
// datasets, in unspecified order.
func AbsorptionIDs() []string {
	ids := make([]string, 0, len(absorptionPaths))
	for id := range absorptionPaths {
		ids = append(ids, id)
	}
	return ids
}
