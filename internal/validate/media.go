package validate

import "github.com/pixelforge/studio-api/internal/model"

// MediaSign validates an upload signing request.
func MediaSign(in Input) (model.MediaSignRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.MediaSignRequest{PublicID: requireMediaKey(in, errs, "publicId")}
	return req, errs.Fields()
}

// MediaCreate validates recording an uploaded asset.
func MediaCreate(in Input) (model.MediaCreateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.MediaCreateRequest{
		PublicID: requireMediaKey(in, errs, "publicId"),
		URL:      requireURL(in, errs, "url"),
	}
	return req, errs.Fields()
}

// MediaRemove validates removing an asset record.
func MediaRemove(in Input) (model.MediaRemoveRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.MediaRemoveRequest{ID: requireID(in, errs, "id", "media")}
	return req, errs.Fields()
}
