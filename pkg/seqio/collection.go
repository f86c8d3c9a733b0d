package seqio

// Collection is a mapping from sequence ID to Record that iterates in the
// order the IDs were first added
type Collection struct {
	records []Record
	index   map[string]int
}

func NewCollection() *Collection {
	return &Collection{index: make(map[string]int)}
}

// Add appends a Record. If a Record with the same ID is already present it is
// replaced, but keeps its original position.
func (c *Collection) Add(R Record) {
	if i, ok := c.index[R.ID]; ok {
		c.records[i] = R
		return
	}
	c.index[R.ID] = len(c.records)
	c.records = append(c.records, R)
}

func (c *Collection) Get(id string) (Record, bool) {
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

func (c *Collection) Len() int {
	return len(c.records)
}

// IDs returns the IDs in insertion order
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.records))
	for i, R := range c.records {
		ids[i] = R.ID
	}
	return ids
}

// Records returns a copy of the Records in insertion order
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
