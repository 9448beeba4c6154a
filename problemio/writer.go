package problemio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sallysoul/knapsack"
)

// Write serializes p to w in the text problem-file format read by Read.
func Write(w io.Writer, p knapsack.Problem) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, len(p.Items)); err != nil {
		return err
	}
	for _, item := range p.Items {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", item.ID, item.Value, item.Weight); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, p.Capacity); err != nil {
		return err
	}

	return bw.Flush()
}
