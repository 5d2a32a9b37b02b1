package geo

import "crowdWatch/internal/domain"

type indexedZone struct {
	id      string
	polygon Polygon
}

// Classifier assigns points to zones. Zones are tested in the order they were
// given and a point belongs to the first zone that contains it, so overlapping
// zones never double count a person.
type Classifier struct {
	zones   []indexedZone
	skipped []string
}

func NewClassifier(zones []domain.Zone) *Classifier {
	c := &Classifier{zones: make([]indexedZone, 0, len(zones))}
	for _, z := range zones {
		p, ok := NewPolygon(z.Boundary)
		if !ok {
			c.skipped = append(c.skipped, z.ID)
			continue
		}
		c.zones = append(c.zones, indexedZone{id: z.ID, polygon: p})
	}
	return c
}

// Skipped lists zones whose boundary could not take part in classification.
func (c *Classifier) Skipped() []string { return c.skipped }

func (c *Classifier) Classify(pt domain.LatLng) (string, bool) {
	for _, z := range c.zones {
		if z.polygon.Contains(pt) {
			return z.id, true
		}
	}
	return "", false
}

// Bucket counts samples per zone id. Every zone id is present in the result,
// including zones that were skipped or received nobody.
func (c *Classifier) Bucket(zones []domain.Zone, samples []domain.LocationSample) (map[string]int, int) {
	counts := make(map[string]int, len(zones))
	for _, z := range zones {
		counts[z.ID] = 0
	}

	unassigned := 0
	for _, s := range samples {
		id, ok := c.Classify(s.Point())
		if !ok {
			unassigned++
			continue
		}
		counts[id]++
	}
	return counts, unassigned
}
