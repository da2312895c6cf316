package services

import (
	"hotel-ledger/storage"
	"hotel-ledger/store"
)

// DataService moves the whole record set between the store and the flat data
// files: load replaces the store wholesale, save overwrites every file.
type DataService struct {
	store *store.Store
	files storage.Files
}

func NewDataService(st *store.Store, files storage.Files) *DataService {
	return &DataService{store: st, files: files}
}

// Load reads all data files and replaces the store contents with them.
func (s *DataService) Load() error {
	rec, err := storage.LoadAll(s.files)
	if err != nil {
		return err
	}

	s.store.Lock()
	defer s.store.Unlock()
	s.store.Replace(rec.Rooms, rec.Guests, rec.Bookings, rec.Payments)
	return nil
}

// Save snapshots the store and overwrites all data files.
func (s *DataService) Save() error {
	s.store.Lock()
	rec := storage.Records{
		Rooms:    s.store.Rooms(),
		Guests:   s.store.Guests(),
		Bookings: s.store.Bookings(),
		Payments: s.store.Payments(),
	}
	s.store.Unlock()

	return storage.SaveAll(s.files, rec)
}
