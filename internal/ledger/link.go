package ledger

// Link associates two or more records as one logical event under a shared
// link value. If some targets already belong to one link group that value
// is reused, otherwise the first target's id becomes the group value.
// Targets spread over two different existing groups are refused. The
// operation is idempotent.
func (s *Service) Link(ids ...int64) (int64, error) {
	if len(ids) < 2 {
		return 0, errf(KindInsufficientTargets, "%d record(s) given", len(ids))
	}

	targets := make([]*Record, 0, len(ids))

	for _, id := range ids {
		r, ok := s.store.Get(id)
		if !ok {
			return 0, errf(KindNotFound, "id %d", id)
		}

		targets = append(targets, r)
	}

	var value int64

	for _, r := range targets {
		if r.Link == 0 || r.Link == value {
			continue
		}

		if value != 0 {
			return 0, errf(KindConflictingLinks, "records span link groups %d and %d", value, r.Link)
		}

		value = r.Link
	}

	if value == 0 {
		value = targets[0].ID
	}

	for _, r := range targets {
		r.Link = value
	}

	return value, nil
}
