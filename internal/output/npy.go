package output

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"geomask/internal/raster"
)

// writeNPY serializes the mask as a NumPy .npy file: format version
// 1.0, dtype uint8, C order, shape (H, W).
func writeNPY(path string, m raster.Mask) error {
	header := fmt.Sprintf("{'descr': '|u1', 'fortran_order': False, 'shape': (%d, %d), }", m.H, m.W)
	// pad with spaces so the data section starts on a 64-byte boundary
	if pad := (10 + len(header) + 1) % 64; pad != 0 {
		header += strings.Repeat(" ", 64-pad)
	}
	header += "\n"

	buf := make([]byte, 0, 10+len(header)+len(m.Data))
	buf = append(buf, "\x93NUMPY"...)
	buf = append(buf, 1, 0)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(header)))
	buf = append(buf, header...)
	buf = append(buf, m.Data...)
	return os.WriteFile(path, buf, 0o644)
}
