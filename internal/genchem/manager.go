package genchem

import (
	"fmt"
	"slices"
	"sync"
)

// ChemistryID is a unique identifier for a stored chemistry
type ChemistryID string

// ChemistryManager keeps built chemistries in memory, keyed by id
type ChemistryManager struct {
	mu          sync.RWMutex
	chemistries map[ChemistryID]*Chemistry
	logger      Logger
}

// NewChemistryManager creates a new chemistry manager
func NewChemistryManager() *ChemistryManager {
	return NewChemistryManagerWithLogger(nil)
}

// NewChemistryManagerWithLogger creates a chemistry manager that logs through logger
func NewChemistryManagerWithLogger(logger Logger) *ChemistryManager {
	logger = orNoOp(logger)
	return &ChemistryManager{
		chemistries: make(map[ChemistryID]*Chemistry),
		logger:      logger,
	}
}

// Create stores chem under a fresh id and returns the id
func (cm *ChemistryManager) Create(chem *Chemistry) (ChemistryID, error) {
	if chem == nil {
		return "", fmt.Errorf("%w: nil chemistry", ErrInvalidArgument)
	}
	id := ChemistryID(NewRandomID())

	cm.mu.Lock()
	cm.chemistries[id] = chem
	cm.mu.Unlock()

	cm.logger.Infof("Chemistry stored: id=%s name=%s species=%d reactions=%d", id, chem.Name, chem.System.Len(), len(chem.Reactions))
	return id, nil
}

// Get retrieves a chemistry by ID
// Returns the chemistry and a boolean indicating if it was found
func (cm *ChemistryManager) Get(id ChemistryID) (*Chemistry, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	chem, exists := cm.chemistries[id]
	return chem, exists
}

// Delete removes a chemistry by ID
// Returns ErrChemistryNotFound if it doesn't exist
func (cm *ChemistryManager) Delete(id ChemistryID) (*Chemistry, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	chem, exists := cm.chemistries[id]
	if !exists {
		return nil, fmt.Errorf("%w: id %s", ErrChemistryNotFound, id)
	}
	delete(cm.chemistries, id)
	return chem, nil
}

// List returns all chemistry IDs in sorted order
func (cm *ChemistryManager) List() []ChemistryID {
	cm.mu.RLock()
	ids := make([]ChemistryID, 0, len(cm.chemistries))
	for id := range cm.chemistries {
		ids = append(ids, id)
	}
	cm.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Len returns the number of stored chemistries
func (cm *ChemistryManager) Len() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.chemistries)
}
