package upload

import (
	domain "fileshare-api/internal/domain/upload"
)

func fromDBModel(model *Record) *domain.Record {
	return &domain.Record{
		ShortID:          model.ShortID,
		ObjectKey:        model.ObjectKey,
		OriginalFilename: model.OriginalFilename,
		ContentType:      model.ContentType,
		Kind:             domain.Kind(model.UploadKind),

		CreatedAt: model.CreatedAt,
		ExpiresAt: model.ExpiresAt,
	}
}

func fromDBModels(models Records) domain.Records {
	recs := make(domain.Records, len(models))
	for idx, m := range models {
		recs[idx] = fromDBModel(m)
	}

	return recs
}
