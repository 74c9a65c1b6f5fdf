package sbom

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	result := *value
	return &result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	result := *value
	return &result
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append(make([]string, 0, len(values)), values...)
}

func cloneChecksums(values []Checksum) []Checksum {
	if values == nil {
		return nil
	}
	return append(make([]Checksum, 0, len(values)), values...)
}

func cloneExternalRefs(values []ExternalRef) []ExternalRef {
	if values == nil {
		return nil
	}
	result := make([]ExternalRef, 0, len(values))
	for _, value := range values {
		value.Comment = cloneString(value.Comment)
		result = append(result, value)
	}
	return result
}

// Clone returns a deep copy of the detail block, sharing no memory with
// the original.
func (it PackageDetail) Clone() PackageDetail {
	return PackageDetail{
		FileName:             cloneString(it.FileName),
		DownloadLocation:     cloneString(it.DownloadLocation),
		FilesAnalyzed:        cloneBool(it.FilesAnalyzed),
		Checksums:            cloneChecksums(it.Checksums),
		Homepage:             cloneString(it.Homepage),
		SourceInfo:           cloneString(it.SourceInfo),
		LicenseConcluded:     cloneString(it.LicenseConcluded),
		LicenseInfoFromFiles: cloneStrings(it.LicenseInfoFromFiles),
		LicenseDeclared:      cloneString(it.LicenseDeclared),
		LicenseComments:      cloneString(it.LicenseComments),
		CopyrightText:        cloneString(it.CopyrightText),
		Summary:              cloneString(it.Summary),
		Description:          cloneString(it.Description),
		Comment:              cloneString(it.Comment),
		ExternalRefs:         cloneExternalRefs(it.ExternalRefs),
		Supplier:             cloneString(it.Supplier),
		Originator:           cloneString(it.Originator),
		AttributionTexts:     cloneStrings(it.AttributionTexts),
	}
}

func (it *Package) Clone() *Package {
	return &Package{
		SPDXID:        it.SPDXID,
		Name:          it.Name,
		Version:       it.Version,
		PackageDetail: it.PackageDetail.Clone(),
		HasFiles:      cloneStrings(it.HasFiles),
	}
}

// Stub is a copy of the package without its file list, ready to be placed
// into another document.
func (it *Package) Stub() *Package {
	result := it.Clone()
	result.HasFiles = nil
	return result
}
