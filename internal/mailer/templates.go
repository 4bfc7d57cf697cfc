package mailer

const welcomeTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Welcome to StockSage</title>
</head>
<body style="margin:0;padding:0;background-color:#0f1115;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#0f1115;padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#181b21;border-radius:8px;overflow:hidden;">
          <tr>
            <td style="padding:32px 40px 16px;">
              <h1 style="color:#e8b931;font-size:24px;margin:0;">StockSage</h1>
            </td>
          </tr>
          <tr>
            <td style="padding:8px 40px;">
              <h2 style="color:#ffffff;font-size:20px;margin:0 0 12px;">Welcome aboard, {{name}}!</h2>
              <p style="color:#c9ced6;font-size:15px;line-height:1.6;margin:0 0 16px;">{{intro}}</p>
              <p style="color:#c9ced6;font-size:15px;line-height:1.6;margin:0 0 24px;">
                Add stocks to your watchlist and we will keep an eye on the market for you.
                Every day you will get a short, calm summary of the news that matters to your portfolio.
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding:0 40px 32px;">
              <p style="color:#6b7280;font-size:12px;margin:0;">
                You are receiving this email because you signed up for StockSage.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const newsSummaryTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Market News Summary</title>
</head>
<body style="margin:0;padding:0;background-color:#0f1115;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#0f1115;padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#181b21;border-radius:8px;overflow:hidden;">
          <tr>
            <td style="padding:32px 40px 8px;">
              <h1 style="color:#e8b931;font-size:24px;margin:0;">StockSage News</h1>
              <p style="color:#6b7280;font-size:13px;margin:8px 0 0;">{{date}}</p>
            </td>
          </tr>
          <tr>
            <td style="padding:16px 40px;color:#c9ced6;font-size:15px;line-height:1.6;">
              {{newsContent}}
            </td>
          </tr>
          <tr>
            <td style="padding:8px 40px 32px;">
              <p style="color:#6b7280;font-size:12px;margin:0;">
                You are receiving this email because news summaries are enabled on your StockSage account.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
