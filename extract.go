package fatstat

// contentPreviewSize is the amount of file content recorded per entry.
const contentPreviewSize = 128

// slackPreviewSize is the amount of slack recorded past the filesize.
const slackPreviewSize = 32

// extractContent derives the content preview and the slack bytes for a file
// entry starting at cluster.
//
// If the cluster chain is allocated, the preview is the first
// min(contentPreviewSize, filesize) bytes and the slack is up to
// slackPreviewSize bytes starting at byte offset filesize of the very same
// buffer; the slack may be short near the end of the buffer but is always
// non-nil. Reading past the declared filesize is intentional, that region is
// where residual data of earlier files lives.
//
// If the chain is unallocated, the preview comes from the single-cluster
// recovery read and the slack is nil: there is no reliable end-of-file for
// unverified storage.
func extractContent(vol fatVolume, cluster, filesize uint32) (content, slack []byte, err error) {
	previewLen := int(filesize)
	if previewLen > contentPreviewSize {
		previewLen = contentPreviewSize
	}

	data, err := vol.ReadChain(cluster, false)
	if err != nil {
		return nil, nil, err
	}

	if len(data) == 0 {
		recovered, err := vol.ReadChain(cluster, true)
		if err != nil {
			return nil, nil, err
		}
		return clip(recovered, 0, previewLen), nil, nil
	}

	return clip(data, 0, previewLen), clip(data, int(filesize), slackPreviewSize), nil
}

// clip returns up to length bytes of data starting at offset, shortened at
// the end of data. The result is non-nil whenever data is.
func clip(data []byte, offset, length int) []byte {
	if offset > len(data) {
		offset = len(data)
	}
	end := offset + length
	if end > len(data) {
		end = len(data)
	}
	return data[offset:end]
}
