package trayico

import (
	"fmt"

	"github.com/josephspurrier/goversioninfo"
)

// ResourceInfo describes the executable the icon gets embedded into.
type ResourceInfo struct {
	Product     string
	Description string
	Company     string
	Copyright   string
	Comment     string
	Version     string
}

// WriteSyso writes a Windows resource object embedding the icon at icoPath
// together with version metadata. The go toolchain links *.syso files in the
// package directory automatically.
func WriteSyso(icoPath, out, arch string, info ResourceInfo) error {
	version, err := ParseVersion(info.Version)
	if err != nil {
		return err
	}
	fileVersion := goversioninfo.FileVersion{
		Major: version.Major,
		Minor: version.Minor,
		Patch: version.Patch,
		Build: version.Build,
	}

	vi := &goversioninfo.VersionInfo{
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion:    fileVersion,
			ProductVersion: fileVersion,
			FileFlagsMask:  "3f",
			FileOS:         "040004",
			FileType:       "01",
		},
		StringFileInfo: goversioninfo.StringFileInfo{
			Comments:         info.Comment,
			CompanyName:      info.Company,
			FileDescription:  info.Description,
			FileVersion:      info.Version,
			InternalName:     info.Product,
			LegalCopyright:   info.Copyright,
			OriginalFilename: info.Product + ".exe",
			ProductName:      info.Product,
			ProductVersion:   info.Version,
		},
		VarFileInfo: goversioninfo.VarFileInfo{
			Translation: goversioninfo.Translation{
				LangID:    goversioninfo.LngUSEnglish,
				CharsetID: goversioninfo.CsUnicode,
			},
		},
		IconPath: icoPath,
	}

	vi.Build()
	vi.Walk()

	if err := vi.WriteSyso(out, arch); err != nil {
		return fmt.Errorf("writing resource %s: %w", out, err)
	}
	return nil
}
