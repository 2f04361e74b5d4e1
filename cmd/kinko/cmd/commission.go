package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kinko/pms/commission"
	"github.com/kinko/pms/persian"
	"github.com/kinko/pms/widget"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	sideOptions = []widget.Option{
		{Value: string(commission.Buy), Label: "خرید"},
		{Value: string(commission.Sell), Label: "فروش"},
	}
	classOptions = []widget.Option{
		{Value: string(commission.Stock), Label: "سهام"},
		{Value: string(commission.Rights), Label: "حق تقدم"},
		{Value: string(commission.Bonds), Label: "اوراق"},
		{Value: string(commission.ETFEquity), Label: "صندوق سهامی"},
		{Value: string(commission.Fixed), Label: "صندوق درآمد ثابت"},
		{Value: string(commission.Gold), Label: "صندوق طلا"},
	}
	marketOptions = []widget.Option{
		{Value: string(commission.TSE), Label: "بورس"},
		{Value: string(commission.IFB), Label: "فرابورس"},
	}
)

func newCommissionCmd(a *app) *cobra.Command {
	var (
		price, qty    string
		side, class   string
		market        string
		persianDigits bool
	)

	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Compute the commission and settlement amount of a trade",
		Long: `Compute the trade value, brokerage commission and the amount paid
(buy) or received (sell).

Gold, Fixed and ETF_Equity are charged the ETF rates on any market.
Prices and quantities may be typed with Persian digits and separators.
The Fields line echoes them as the order form's money fields show them,
digits only and grouped by thousands. With --persian the amounts are
printed like the form's totals: integer part, in Persian digits.

Examples:
  kinko commission --price 1000 --qty 10 --side buy --class Stock
  kinko commission --price ۱۲,۵۰۰ --qty ۴۰۰ --side sell --class Gold --persian`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The order form's dropdowns validate the choices.
			var panels widget.Panels
			sideSel := widget.NewSelect(&panels, "side", sideOptions...)
			classSel := widget.NewSelect(&panels, "class", classOptions...)
			marketSel := widget.NewSelect(&panels, "market", marketOptions...)

			s, err := commission.ParseSide(side)
			if err != nil {
				return err
			}
			c, err := commission.ParseAssetClass(class)
			if err != nil {
				return err
			}
			m := a.cfg.Market()
			if market != "" {
				if m, err = commission.ParseMarket(market); err != nil {
					return err
				}
			}
			for sel, v := range map[*widget.Select]string{sideSel: string(s), classSel: string(c), marketSel: string(m)} {
				if err := sel.Choose(v); err != nil {
					return err
				}
			}

			res, err := a.cfg.Engine().CalculateText(price, qty, s, c, m)
			if err != nil {
				return err
			}
			a.log.Debug("commission computed", "side", s, "class", c, "market", m, "rate", res.RateUsed.String())

			num := func(d decimal.Decimal) string {
				if persianDigits {
					return persian.FormatLarge(d.InexactFloat64())
				}
				return humanize.Commaf(d.InexactFloat64())
			}
			field := func(s string) string {
				if persianDigits {
					return persian.ToPersianDigits(persian.FormatMoneyInput(s))
				}
				return persian.FormatMoneyInput(s)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order:        %s / %s / %s\n", sideSel.Display(), classSel.Display(), marketSel.Display())
			fmt.Fprintf(out, "Fields:       %s × %s\n", field(price), field(qty))
			fmt.Fprintf(out, "Base value:   %s\n", num(res.BaseValue))
			fmt.Fprintf(out, "Commission:   %s (rate %s)\n", num(res.Commission), res.RateUsed.String())
			fmt.Fprintf(out, "Final amount: %s\n", num(res.FinalAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "price per unit (required)")
	cmd.Flags().StringVar(&qty, "qty", "", "quantity (required)")
	cmd.Flags().StringVar(&side, "side", "buy", "buy or sell")
	cmd.Flags().StringVar(&class, "class", string(commission.Stock), "Stock, Rights, Bonds, ETF_Equity, Fixed or Gold")
	cmd.Flags().StringVar(&market, "market", "", "TSE or IFB (default commission.default_market)")
	cmd.Flags().BoolVar(&persianDigits, "persian", false, "print amounts in Persian digits")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("qty")
	return cmd
}
